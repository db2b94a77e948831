package psdimage_test

import (
	"testing"

	"github.com/benoitkugler/okpsd/psdimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smartObjectDoc(blocks psdimage.TaggedBlocks, docBlocks psdimage.TaggedBlocks) *psdimage.SmartObjectLayer {
	rec := bareRecord("placed")
	rec.Left, rec.Top, rec.Right, rec.Bottom = 0, 0, 8, 8
	rec.Blocks = blocks
	doc := psdimage.NewDocument(&psdimage.Decoded{
		Header:  rgbHeader(10, 10),
		Records: []psdimage.Record{rec},
		Grouped: []psdimage.GroupedLayer{leaf(0, psdimage.KindSmartObject)},
		Blocks:  docBlocks,
	})
	return doc.Layers()[0].(*psdimage.SmartObjectLayer)
}

func TestSmartObjectNoPlacedBlock(t *testing.T) {
	so := smartObjectDoc(nil, nil)
	assert.Equal(t, "", so.UniqueID())
	_, ok := so.TransformBBox()
	assert.False(t, ok)
	_, ok = so.PlacedLayerSize()
	assert.False(t, ok)
	assert.Nil(t, so.LinkedData())
}

func TestSmartObjectPlacedBlock(t *testing.T) {
	so := smartObjectDoc(psdimage.TaggedBlocks{
		psdimage.KeySmartObjectPlaced: &psdimage.PlacedLayer{
			UniqueID:  "asset-1",
			Transform: []float64{3, 4, 20, 4, 20, 15, 3, 15},
			Size:      &psdimage.PlacedSize{Width: 17, Height: 11},
		},
	}, nil)

	assert.Equal(t, "asset-1", so.UniqueID())

	bb, ok := so.TransformBBox()
	require.True(t, ok)
	assert.Equal(t, psdimage.BBox{3, 4, 20, 15}, bb)

	size, ok := so.PlacedLayerSize()
	require.True(t, ok)
	assert.Equal(t, psdimage.Size{Width: 17, Height: 11}, size)
}

func TestSmartObjectProbeOrder(t *testing.T) {
	// the modern key wins over the legacy ones
	so := smartObjectDoc(psdimage.TaggedBlocks{
		psdimage.KeyPlacedLayer:       &psdimage.PlacedLayer{UniqueID: "legacy"},
		psdimage.KeySmartObjectPlaced: &psdimage.PlacedLayer{UniqueID: "modern"},
	}, nil)
	assert.Equal(t, "modern", so.UniqueID())

	legacy := smartObjectDoc(psdimage.TaggedBlocks{
		psdimage.KeyPlacedLayerLegacy1: &psdimage.PlacedLayer{UniqueID: "older"},
	}, nil)
	assert.Equal(t, "older", legacy.UniqueID())
}

func TestSmartObjectDegradedQueries(t *testing.T) {
	// a placed block without transform or size degrades each query
	so := smartObjectDoc(psdimage.TaggedBlocks{
		psdimage.KeySmartObjectPlaced: &psdimage.PlacedLayer{UniqueID: "bare"},
	}, nil)
	_, ok := so.TransformBBox()
	assert.False(t, ok)
	_, ok = so.PlacedLayerSize()
	assert.False(t, ok)
}

func TestSmartObjectLinkedData(t *testing.T) {
	registry := psdimage.TaggedBlocks{
		psdimage.KeyLinkedLayers1: psdimage.LinkedLayers{
			{UniqueID: "asset-1", Filename: "leaf.png", Data: []byte{9}},
		},
	}
	so := smartObjectDoc(psdimage.TaggedBlocks{
		psdimage.KeySmartObjectPlaced: &psdimage.PlacedLayer{UniqueID: "asset-1"},
	}, registry)
	linked := so.LinkedData()
	require.NotNil(t, linked)
	assert.Equal(t, "leaf.png", linked.Filename())

	// a broken link is expected, not an error
	broken := smartObjectDoc(psdimage.TaggedBlocks{
		psdimage.KeySmartObjectPlaced: &psdimage.PlacedLayer{UniqueID: "gone"},
	}, registry)
	assert.Nil(t, broken.LinkedData())
}
