package psdimage

// Enumerations shared with the decoding side: layer kind tags, blend
// mode keys, channel identifiers, tagged block keys and vector path
// record selectors.

// Kind tags a layer record. Decoders may emit tags outside this set;
// tree assembly diagnoses and skips them.
type Kind string

const (
	KindGroup       Kind = "group"
	KindPixel       Kind = "pixel"
	KindShape       Kind = "shape"
	KindType        Kind = "type"
	KindSmartObject Kind = "smartobject"
	KindAdjustment  Kind = "adjustment"
)

// BlendMode is the four character blend mode key of a layer record.
type BlendMode string

const (
	BlendPassThrough BlendMode = "pass"
	BlendNormal      BlendMode = "norm"
	BlendDissolve    BlendMode = "diss"
	BlendDarken      BlendMode = "dark"
	BlendMultiply    BlendMode = "mul "
	BlendLighten     BlendMode = "lite"
	BlendScreen      BlendMode = "scrn"
	BlendOverlay     BlendMode = "over"
	BlendDifference  BlendMode = "diff"
	BlendHue         BlendMode = "hue "
	BlendSaturation  BlendMode = "sat "
	BlendColor       BlendMode = "colr"
	BlendLuminosity  BlendMode = "lum "
)

func (b BlendMode) String() string {
	switch b {
	case BlendPassThrough:
		return "pass-through"
	case BlendNormal:
		return "normal"
	case BlendDissolve:
		return "dissolve"
	case BlendDarken:
		return "darken"
	case BlendMultiply:
		return "multiply"
	case BlendLighten:
		return "lighten"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDifference:
		return "difference"
	case BlendHue:
		return "hue"
	case BlendSaturation:
		return "saturation"
	case BlendColor:
		return "color"
	case BlendLuminosity:
		return "luminosity"
	default:
		return "<unknown BlendMode " + string(b) + ">"
	}
}

// ColorMode of the document header.
type ColorMode uint8

const (
	ColorModeBitmap       ColorMode = 0
	ColorModeGrayscale    ColorMode = 1
	ColorModeIndexed      ColorMode = 2
	ColorModeRGB          ColorMode = 3
	ColorModeCMYK         ColorMode = 4
	ColorModeMultichannel ColorMode = 7
	ColorModeDuotone      ColorMode = 8
	ColorModeLab          ColorMode = 9
)

func (c ColorMode) String() string {
	switch c {
	case ColorModeBitmap:
		return "Bitmap"
	case ColorModeGrayscale:
		return "Grayscale"
	case ColorModeIndexed:
		return "Indexed"
	case ColorModeRGB:
		return "RGB"
	case ColorModeCMYK:
		return "CMYK"
	case ColorModeMultichannel:
		return "Multichannel"
	case ColorModeDuotone:
		return "Duotone"
	case ColorModeLab:
		return "Lab"
	default:
		return "<unknown ColorMode>"
	}
}

// ChannelID identifies a channel plane of a layer record.
// Non-negative values are color components in mode order.
type ChannelID int8

const (
	ChannelRed          ChannelID = 0
	ChannelGreen        ChannelID = 1
	ChannelBlue         ChannelID = 2
	ChannelTransparency ChannelID = -1
	ChannelUserMask     ChannelID = -2
	ChannelRealUserMask ChannelID = -3
)

// BlockKey is the four character key of a tagged block.
type BlockKey string

const (
	KeyUnicodeName    BlockKey = "luni"
	KeyLayerID        BlockKey = "lyid"
	KeySectionDivider BlockKey = "lsct"

	// the two revisions of the vector mask setting
	KeyVectorMask    BlockKey = "vmsk"
	KeyVectorMaskAlt BlockKey = "vsms"

	KeyTypeTool   BlockKey = "TySh"
	KeySolidColor BlockKey = "SoCo"

	// placed layer data: the modern key first, then the legacy ones,
	// probed in this order by smart object layers
	KeySmartObjectPlaced  BlockKey = "SoLd"
	KeyPlacedLayer        BlockKey = "PlLd"
	KeyPlacedLayerLegacy1 BlockKey = "plLd"
	KeyPlacedLayerLegacy2 BlockKey = "SoLE"

	// the three revisions of the document pattern list
	KeyPatterns1 BlockKey = "Patt"
	KeyPatterns2 BlockKey = "Pat2"
	KeyPatterns3 BlockKey = "Pat3"

	// the three revisions of the linked layer collection
	KeyLinkedLayers1 BlockKey = "lnkD"
	KeyLinkedLayers2 BlockKey = "lnk2"
	KeyLinkedLayers3 BlockKey = "lnk3"
)

// DividerType of a section divider block.
type DividerType uint8

const (
	DividerOther        DividerType = 0
	DividerOpenFolder   DividerType = 1
	DividerClosedFolder DividerType = 2
	DividerBounding     DividerType = 3
)

func (d DividerType) String() string {
	switch d {
	case DividerOther:
		return "Other"
	case DividerOpenFolder:
		return "OpenFolder"
	case DividerClosedFolder:
		return "ClosedFolder"
	case DividerBounding:
		return "Bounding"
	default:
		return "<unknown DividerType>"
	}
}

// PathSelector is the record type of a vector mask path point.
type PathSelector uint8

const (
	SelectorClosedLength       PathSelector = 0
	SelectorClosedKnotLinked   PathSelector = 1
	SelectorClosedKnotUnlinked PathSelector = 2
	SelectorOpenLength         PathSelector = 3
	SelectorOpenKnotLinked     PathSelector = 4
	SelectorOpenKnotUnlinked   PathSelector = 5
	SelectorFillRule           PathSelector = 6
	SelectorClipboard          PathSelector = 7
	SelectorInitialFillRule    PathSelector = 8
)

// onCurve reports whether the record carries an actual anchor point.
func (s PathSelector) onCurve() bool {
	switch s {
	case SelectorClosedKnotLinked, SelectorClosedKnotUnlinked,
		SelectorOpenKnotLinked, SelectorOpenKnotUnlinked:
		return true
	}
	return false
}
