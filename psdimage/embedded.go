package psdimage

import "fmt"

// EmbeddedAsset is a file embedded in (or linked from) the document,
// referenced by smart object layers through their unique id.
type EmbeddedAsset struct {
	rec *LinkedLayerRecord
}

// UniqueID of the asset.
func (e *EmbeddedAsset) UniqueID() string { return e.rec.UniqueID }

// Filename of the asset.
func (e *EmbeddedAsset) Filename() string { return e.rec.Filename }

// FileType is the four character file type key.
func (e *EmbeddedAsset) FileType() string { return e.rec.FileType }

// Data is the raw asset content. Empty for externally linked files.
func (e *EmbeddedAsset) Data() []byte { return e.rec.Data }

func (e *EmbeddedAsset) String() string {
	return fmt.Sprintf("embedded %q (%d bytes)", e.Filename(), len(e.Data()))
}
