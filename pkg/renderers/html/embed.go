package html

import "embed"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// serve or inspect the raw templates.
func TemplatesFS() embed.FS {
	return embeddedTemplates
}
