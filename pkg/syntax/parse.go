package syntax

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/hotg-ai/rune-compiler/pkg/diag"
)

// Parse decodes Runefile YAML text into a Document (spec.md §4.1). On
// failure it returns the first error the YAML parser or the Document's
// custom decoder encountered.
func Parse(src string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, fmt.Errorf("parsing runefile: %w", err)
	}
	return &doc, nil
}

// yamlLineNumber extracts the first 1-based "line N" from an error message:
// either the one yaml.v3 embeds in its own messages ("yaml: line 4: ...")
// or the "line N:" prefix our custom UnmarshalYAML errors carry.
// DiagnosticFromParseError falls back to line 1 when neither is present.
var yamlLineNumber = regexp.MustCompile(`line (\d+)`)

// DiagnosticFromParseError converts a Parse error into a single Diagnostic
// with a source span addressing the original runefile text, as required by
// spec.md §4.1 ("a single diagnostic with source span for the first YAML
// error") and §6.4.
func DiagnosticFromParseError(file, src string, err error) diag.Diagnostic {
	line := 1
	if m := yamlLineNumber.FindStringSubmatch(err.Error()); m != nil {
		fmt.Sscanf(m[1], "%d", &line)
	}

	loc := diag.NewLocator(src)
	span := loc.Span(file, line, 1)
	return diag.New(diag.Error, err.Error(), span)
}
