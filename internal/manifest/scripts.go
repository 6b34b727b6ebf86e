package manifest

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Check parses every script as a POSIX shell command line. npm hands
// scripts to sh, so a script that does not parse will fail at run time.
// The returned error joins one entry per broken script.
func (s Scripts) Check() error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))

	var errs []error
	for _, script := range []struct{ name, cmd string }{
		{"dev", s.Dev},
		{"start", s.Start},
		{"test", s.Test},
	} {
		if _, err := parser.Parse(strings.NewReader(script.cmd), script.name); err != nil {
			errs = append(errs, fmt.Errorf("script %s: %w", script.name, err))
		}
	}
	return errors.Join(errs...)
}
