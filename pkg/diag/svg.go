package diag

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

// SVGOptions configures the ArtSVG debug renderer.
type SVGOptions struct {
	Width      int    // canvas width in pixels
	CharWidth  int    // approximate monospace glyph width in pixels
	RowHeight  int    // height of the source-line row in pixels
	Background string // canvas background color
	Title      string // optional title drawn above the strip
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1000,
		CharWidth:  9,
		RowHeight:  28,
		Background: "#1a1a2e",
		Title:      "diagnostic",
	}
}

// ArtSVG renders d's primary span as an annotated strip: the offending
// line of src, with the span highlighted and the message printed beneath
// it. This is a debug helper only; rendering is otherwise left to the
// caller, but a visual artifact is often useful while developing a
// Runefile.
func ArtSVG(src string, d Diagnostic, opts SVGOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts = DefaultSVGOptions()
	}

	loc := NewLocator(src)
	line, col := loc.LineColumn(d.Primary.Start)
	lineText := loc.LineText(src, line)

	spanLen := d.Primary.End - d.Primary.Start
	if spanLen < 1 {
		spanLen = 1
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	height := opts.RowHeight * 3
	canvas.Start(opts.Width, height)
	canvas.Rect(0, 0, opts.Width, height, fmt.Sprintf("fill:%s", opts.Background))

	canvas.Text(10, opts.RowHeight-8, fmt.Sprintf("%s (line %d)", opts.Title, line),
		"font-family:monospace;font-size:14px;fill:#eee")

	highlightX := 10 + (col-1)*opts.CharWidth
	highlightW := spanLen * opts.CharWidth
	canvas.Rect(highlightX, opts.RowHeight+4, highlightW, opts.RowHeight-8,
		severityColor(d.Severity))

	canvas.Text(10, opts.RowHeight*2-4, lineText,
		"font-family:monospace;font-size:14px;fill:#fff")
	canvas.Text(10, opts.RowHeight*3-4, d.Message,
		"font-family:monospace;font-size:12px;fill:#ccc")

	canvas.End()

	return buf.Bytes(), nil
}

func severityColor(s Severity) string {
	switch s {
	case Bug, Error:
		return "fill:#e74c3c;opacity:0.5"
	case Warning:
		return "fill:#f1c40f;opacity:0.5"
	default:
		return "fill:#3498db;opacity:0.5"
	}
}
