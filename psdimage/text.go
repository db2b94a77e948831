package psdimage

import "fmt"

// TypeLayer is a text layer: it carries the raw text together with
// fonts and per-run formatting, resolved from the type tool block and
// its nested engine data.
type TypeLayer struct {
	layerBase
}

// StyleSpan is one run of uniformly styled text.
type StyleSpan struct {
	Text  string
	Font  Font
	Sheet StyleSheet
}

func (l *TypeLayer) typeTool() *TypeTool {
	tt, _ := l.record().Blocks[KeyTypeTool].(*TypeTool)
	return tt
}

// Text is the text content, without engine data resolution.
func (l *TypeLayer) Text() string {
	if tt := l.typeTool(); tt != nil {
		return tt.Text
	}
	return ""
}

// Matrix returns the affine transform (xx, xy, yx, yy, tx, ty) of the
// type tool. ok is false when the block is absent.
func (l *TypeLayer) Matrix() ([6]float64, bool) {
	tt := l.typeTool()
	if tt == nil {
		return [6]float64{}, false
	}
	return tt.Matrix, true
}

// EngineData returns the rich text formatting structure, or nil.
func (l *TypeLayer) EngineData() *EngineData {
	if tt := l.typeTool(); tt != nil {
		return tt.Engine
	}
	return nil
}

// FullText is the raw editor string, including the trailing newline.
func (l *TypeLayer) FullText() string {
	if ed := l.EngineData(); ed != nil {
		return ed.EditorText
	}
	return ""
}

// FontSet of the document resources, or nil.
func (l *TypeLayer) FontSet() []Font {
	if ed := l.EngineData(); ed != nil {
		return ed.FontSet
	}
	return nil
}

// WritingDirection of the rendered text. ok is false when no engine
// data is present.
func (l *TypeLayer) WritingDirection() (int, bool) {
	ed := l.EngineData()
	if ed == nil {
		return 0, false
	}
	return ed.WritingDirection, true
}

// StyleSpans splits the full text into style runs. Each span carries
// the exact text slice of its run and the font resolved from the font
// set by the run's font index (defaulting to the first entry when the
// index is out of range). Run lengths count characters, not bytes.
//
// The spans cover the text exactly once; when the run length sum
// disagrees with the text length a warning diagnostic is emitted and
// the slicing is clamped instead of overrunning.
func (l *TypeLayer) StyleSpans() ([]StyleSpan, Diagnostics) {
	var diags Diagnostics
	ed := l.EngineData()
	if ed == nil {
		return nil, nil
	}
	text := []rune(ed.EditorText)
	fontSet := ed.FontSet

	var spans []StyleSpan
	offset := 0
	for _, run := range ed.Runs {
		end := offset + run.Length
		if end > len(text) {
			diags.add(SeverityWarning, l.Name(),
				"style run exceeds the text length (%d > %d)", end, len(text))
			end = len(text)
		}
		var font Font
		if index := run.Sheet.FontIndex; index >= 0 && index < len(fontSet) {
			font = fontSet[index]
		} else if len(fontSet) > 0 {
			font = fontSet[0]
		}
		spans = append(spans, StyleSpan{
			Text:  string(text[offset:end]),
			Font:  font,
			Sheet: run.Sheet,
		})
		offset = end
	}
	if offset != len(text) {
		diags.add(SeverityWarning, l.Name(),
			"style runs cover %d of %d characters", offset, len(text))
	}
	return spans, diags
}

func (l *TypeLayer) String() string {
	bb := l.BBox()
	return fmt.Sprintf("type %q: %s, visible=%t", l.Name(), bb, l.Visible())
}
