package psdimage_test

import (
	"testing"

	"github.com/benoitkugler/okpsd/psdimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeDoc(tool *psdimage.TypeTool) *psdimage.TypeLayer {
	rec := bareRecord("title")
	if tool != nil {
		rec.Blocks = psdimage.TaggedBlocks{psdimage.KeyTypeTool: tool}
	}
	doc := psdimage.NewDocument(&psdimage.Decoded{
		Header:  rgbHeader(10, 10),
		Records: []psdimage.Record{rec},
		Grouped: []psdimage.GroupedLayer{leaf(0, psdimage.KindType)},
	})
	return doc.Layers()[0].(*psdimage.TypeLayer)
}

var fonts = []psdimage.Font{{Name: "Helvetica"}, {Name: "Courier"}}

func TestTypeAccessors(t *testing.T) {
	l := typeDoc(&psdimage.TypeTool{
		Matrix: [6]float64{1, 0, 0, 1, 12, 34},
		Text:   "Hello",
		Engine: &psdimage.EngineData{
			EditorText:       "Hello\n",
			FontSet:          fonts,
			WritingDirection: 0,
		},
	})
	assert.Equal(t, "Hello", l.Text())
	assert.Equal(t, "Hello\n", l.FullText())
	assert.Equal(t, fonts, l.FontSet())

	m, ok := l.Matrix()
	require.True(t, ok)
	assert.Equal(t, [6]float64{1, 0, 0, 1, 12, 34}, m)

	dir, ok := l.WritingDirection()
	require.True(t, ok)
	assert.Equal(t, 0, dir)
}

func TestTypeWithoutBlocks(t *testing.T) {
	l := typeDoc(nil)
	assert.Equal(t, "", l.Text())
	assert.Equal(t, "", l.FullText())
	_, ok := l.Matrix()
	assert.False(t, ok)
	_, ok = l.WritingDirection()
	assert.False(t, ok)
	spans, diags := l.StyleSpans()
	assert.Nil(t, spans)
	assert.Empty(t, diags)
}

func TestStyleSpans(t *testing.T) {
	l := typeDoc(&psdimage.TypeTool{
		Engine: &psdimage.EngineData{
			EditorText: "Hello World\n",
			FontSet:    fonts,
			Runs: []psdimage.StyleRun{
				{Length: 6, Sheet: psdimage.StyleSheet{FontIndex: 1, FontSize: 24}},
				{Length: 6, Sheet: psdimage.StyleSheet{FontSize: 12}},
			},
		},
	})
	spans, diags := l.StyleSpans()
	assert.Empty(t, diags)
	require.Len(t, spans, 2)
	assert.Equal(t, "Hello ", spans[0].Text)
	assert.Equal(t, "Courier", spans[0].Font.Name)
	assert.Equal(t, 24.0, spans[0].Sheet.FontSize)
	assert.Equal(t, "World\n", spans[1].Text)
	// font index defaults to the first entry
	assert.Equal(t, "Helvetica", spans[1].Font.Name)
	assert.Equal(t, len([]rune("Hello World\n")), len([]rune(spans[0].Text))+len([]rune(spans[1].Text)))
}

func TestStyleSpansLengthMismatch(t *testing.T) {
	// runs overrun the text: slicing is clamped and diagnosed
	over := typeDoc(&psdimage.TypeTool{
		Engine: &psdimage.EngineData{
			EditorText: "abc",
			FontSet:    fonts,
			Runs:       []psdimage.StyleRun{{Length: 5}},
		},
	})
	spans, diags := over.StyleSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "abc", spans[0].Text)
	require.NotEmpty(t, diags)
	assert.Equal(t, psdimage.SeverityWarning, diags[0].Severity)

	// runs fall short of the text: the gap is diagnosed
	short := typeDoc(&psdimage.TypeTool{
		Engine: &psdimage.EngineData{
			EditorText: "abcdef",
			FontSet:    fonts,
			Runs:       []psdimage.StyleRun{{Length: 2}},
		},
	})
	spans, diags = short.StyleSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "ab", spans[0].Text)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "cover 2 of 6")
}

func TestStyleSpansFontOutOfRange(t *testing.T) {
	l := typeDoc(&psdimage.TypeTool{
		Engine: &psdimage.EngineData{
			EditorText: "hi",
			FontSet:    fonts,
			Runs:       []psdimage.StyleRun{{Length: 2, Sheet: psdimage.StyleSheet{FontIndex: 9}}},
		},
	})
	spans, _ := l.StyleSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "Helvetica", spans[0].Font.Name)
}
