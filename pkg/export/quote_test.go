package export

import "testing"

func TestNeedsQuoting(t *testing.T) {
	plain := []string{
		"App",
		"hello world",
		"v1.2.3-beta",
		"some/path/file.txt",
		"Name_With_Underscores",
	}
	for _, s := range plain {
		if needsQuoting(s) {
			t.Errorf("needsQuoting(%q) = true, want false", s)
		}
	}

	quoted := []string{
		"",            // explicitly blank
		"true",        // would re-parse as bool
		"123",         // integer
		"8.5",         // float
		"null",        // null
		"~",           // null
		"a: b",        // inline mapping
		"- item",      // sequence
		"#comment",    // comment
		"{flow}",      // flow mapping
		"[flow]",      // flow sequence
		" leading",    // plain scalars strip leading space
		"trailing ",   // and trailing space
		"line\nbreak", // folds to a different string
		"0x1F",        // hex integer
	}
	for _, s := range quoted {
		if !needsQuoting(s) {
			t.Errorf("needsQuoting(%q) = false, want true", s)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		0.5:     "0.5",
		8:       "8.0",
		-3:      "-3.0",
		1e21:    "1e+21",
		0.00001: "1e-05",
	}
	for in, want := range tests {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
