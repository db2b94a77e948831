package psdimage

// The decoded document surface. A binary container decoder (external
// to this package) produces these structures once; everything here is
// read-only afterwards, so layers can resolve their derived
// properties lazily through their record index at any time.

// Header of a decoded document.
type Header struct {
	Width, Height int
	Channels      int
	Depth         int
	ColorMode     ColorMode
}

// ChannelData is one decoded 8-bit channel plane of a layer record,
// row major, sized to the record bounding box.
type ChannelData struct {
	ID   ChannelID
	Data []uint8
}

// MaskData is the mask sub-record of a layer record.
type MaskData struct {
	Left, Top, Right, Bottom int

	// the "real" rectangle covers the combined bitmap and vector
	// mask; it is only meaningful when HasReal is set
	RealLeft, RealTop, RealRight, RealBottom int
	HasReal                                  bool

	BackgroundColor uint8
}

// Block is a decoded tagged block payload. The set of implementations
// is closed; consumers switch on the concrete types.
type Block interface {
	isTaggedBlock()
}

// UnicodeName is the unicode layer name block, preferred over the
// record name when present.
type UnicodeName string

// LayerIDBlock carries the stable layer id.
type LayerIDBlock int32

// SectionDivider marks group boundaries and carries the folder state.
type SectionDivider struct {
	Type DividerType
}

// PathPoint is one record of a vector mask path. Anchor coordinates
// are fractions of the document size, vertical first as stored on
// disk.
type PathPoint struct {
	Selector         PathSelector
	AnchorY, AnchorX float64
}

// VectorMask is the vector mask setting block.
type VectorMask struct {
	Invert, NotLink, Disable bool
	Path                     []PathPoint
}

// PlacedSize is the keyed size record of a placed layer block.
type PlacedSize struct {
	Width, Height float64
}

// PlacedLayer describes the transform applied to an embedded or
// linked asset shown as a smart object. Transform lists the four
// transformed corners (x0,y0 ... x3,y3); nil when absent.
type PlacedLayer struct {
	UniqueID  string
	Transform []float64
	Size      *PlacedSize
}

// Font is one entry of the document font set.
type Font struct {
	Name      string
	Script    int
	Synthetic bool
}

// StyleSheet is the resolved style of a text run.
type StyleSheet struct {
	FontIndex  int // index into the font set
	FontSize   float64
	FauxBold   bool
	FauxItalic bool
	Underline  bool
	Tracking   int
}

// StyleRun pairs a character count with its style sheet.
type StyleRun struct {
	Length int
	Sheet  StyleSheet
}

// EngineData is the decoded rich text formatting structure of a type
// layer.
type EngineData struct {
	// raw string including the trailing newline
	EditorText string

	Runs             []StyleRun
	FontSet          []Font
	WritingDirection int
}

// TypeTool is the type tool object setting block.
type TypeTool struct {
	// transform matrix xx, xy, yx, yy, tx, ty
	Matrix [6]float64
	Text   string
	Engine *EngineData
}

// SolidColor is the solid color sheet setting block (RGB components
// in the 0..255 range, stored as doubles).
type SolidColor struct {
	R, G, B float64
}

// PatternRecord is one decoded pattern. Point stores height then
// width, as decoded; Channels holds the color planes in mode order,
// with an optional trailing alpha plane.
type PatternRecord struct {
	ID, Name string
	Point    [2]int
	Channels [][]uint8
}

// PatternsBlock is a document level pattern list.
type PatternsBlock []PatternRecord

// LinkedLayerRecord is one embedded or linked asset of a linked layer
// collection.
type LinkedLayerRecord struct {
	UniqueID string
	Filename string
	FileType string
	Data     []byte
}

// LinkedLayers is a document level linked layer collection block.
type LinkedLayers []LinkedLayerRecord

func (UnicodeName) isTaggedBlock()    {}
func (LayerIDBlock) isTaggedBlock()   {}
func (SectionDivider) isTaggedBlock() {}
func (*VectorMask) isTaggedBlock()    {}
func (*PlacedLayer) isTaggedBlock()   {}
func (*TypeTool) isTaggedBlock()      {}
func (SolidColor) isTaggedBlock()     {}
func (PatternsBlock) isTaggedBlock()  {}
func (LinkedLayers) isTaggedBlock()   {}

// TaggedBlocks maps block keys to their decoded payload.
type TaggedBlocks map[BlockKey]Block

// Record is one decoded layer record.
type Record struct {
	Name      string
	Visible   bool
	Opacity   uint8
	BlendMode BlendMode

	Left, Top, Right, Bottom int

	// set when the pixel channels carry no usable data (pure vector
	// fill shapes)
	PixelDataIrrelevant bool

	Mask     *MaskData
	Channels []ChannelData
	Blocks   TaggedBlocks
}

func (r *Record) bbox() BBox {
	return BBox{r.Left, r.Top, r.Right, r.Bottom}
}

// channel returns the plane with the given id, or nil.
func (r *Record) channel(id ChannelID) []uint8 {
	for _, c := range r.Channels {
		if c.ID == id {
			return c.Data
		}
	}
	return nil
}

// GroupedLayer is one node of the externally grouped record
// description. Index keys the flat record store; Layers is only set
// for groups; Clip lists the records clipped to this one.
type GroupedLayer struct {
	Index  int
	Kind   Kind
	Layers []GroupedLayer
	Clip   []GroupedLayer
}

// Decoded is a complete decoded document: the flat record store, the
// nested grouped description referencing it by index, and the
// document level tagged blocks.
type Decoded struct {
	Header  Header
	Records []Record
	Grouped []GroupedLayer
	Blocks  TaggedBlocks
}
