package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goliatone/go-yamlform/pkg/renderers/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, styleMuted.Render("aborted"))
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, styleError.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
