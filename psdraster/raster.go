// Implements the raster backend for the layered image model,
// by wrapping the standard image libraries, bild and rasterx.
package psdraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blend"
	"github.com/benoitkugler/okpsd/psdimage"
)

var _ psdimage.Rasterizer = (*Driver)(nil) // assert interface conformance

// Driver renders decoded channel data and combines rasters with the
// standard image/draw operations, using bild for the alpha-aware
// "over" composite. It holds no state and may be shared.
type Driver struct{}

// NewDriver returns a driver with default values.
func NewDriver() *Driver { return &Driver{} }

func (d *Driver) NewCanvas(width, height int) *image.RGBA {
	// a zeroed RGBA buffer is fully transparent
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (d *Driver) RasterizeLayer(l psdimage.Layer) (image.Image, error) {
	switch l := l.(type) {
	case *psdimage.Group:
		return nil, errors.New("group layers are composed, not rasterized")
	case *psdimage.ShapeLayer:
		if l.Sizeless() {
			return d.fillPolygon(l)
		}
		return d.channelImage(l)
	default:
		return d.channelImage(l)
	}
}

// channelImage assembles the 8-bit channel planes of a leaf layer
// into an image sized to its bounding box.
func (d *Driver) channelImage(l psdimage.Layer) (image.Image, error) {
	bb := l.BBox()
	width, height := bb.Width(), bb.Height()
	if width <= 0 || height <= 0 {
		return nil, errors.New("layer has no extent")
	}
	channels := l.Channels()
	if len(channels) == 0 {
		return nil, errors.New("layer carries no channel data")
	}

	plane := func(id psdimage.ChannelID) []uint8 {
		for _, c := range channels {
			if c.ID == id {
				return c.Data
			}
		}
		return nil
	}

	area := width * height
	switch mode := l.Document().Header().ColorMode; mode {
	case psdimage.ColorModeRGB:
		red, green, blue := plane(psdimage.ChannelRed), plane(psdimage.ChannelGreen), plane(psdimage.ChannelBlue)
		if len(red) < area || len(green) < area || len(blue) < area {
			return nil, errors.New("truncated color plane")
		}
		alpha := plane(psdimage.ChannelTransparency)
		if alpha != nil && len(alpha) < area {
			return nil, errors.New("truncated alpha plane")
		}
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for i := 0; i < area; i++ {
			a := uint8(255)
			if alpha != nil {
				a = alpha[i]
			}
			img.Pix[4*i] = red[i]
			img.Pix[4*i+1] = green[i]
			img.Pix[4*i+2] = blue[i]
			img.Pix[4*i+3] = a
		}
		return img, nil
	case psdimage.ColorModeGrayscale:
		gray := plane(0)
		if len(gray) < area {
			return nil, errors.New("truncated gray plane")
		}
		img := image.NewGray(image.Rect(0, 0, width, height))
		copy(img.Pix, gray[:area])
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported color mode %s", mode)
	}
}

func (d *Driver) RasterizeMask(m *psdimage.Mask, real bool) (image.Image, error) {
	var bb psdimage.BBox
	if real {
		bb = m.BBox()
	} else {
		bb = m.DefaultBBox()
	}
	if !bb.Valid() {
		return nil, errors.New("mask has no extent")
	}
	plane := m.Plane(real)
	if plane == nil {
		return nil, errors.New("mask carries no channel data")
	}
	area := bb.Width() * bb.Height()
	if len(plane) < area {
		return nil, errors.New("truncated mask plane")
	}
	img := image.NewGray(image.Rect(0, 0, bb.Width(), bb.Height()))
	copy(img.Pix, plane[:area])
	return img, nil
}

func (d *Driver) RasterizePattern(p *psdimage.Pattern) (image.Image, error) {
	width, height := p.Width(), p.Height()
	if width <= 0 || height <= 0 {
		return nil, errors.New("pattern has no extent")
	}
	area := width * height
	channels := p.Channels()
	for _, c := range channels {
		if len(c) < area {
			return nil, errors.New("truncated pattern plane")
		}
	}
	switch len(channels) {
	case 1:
		img := image.NewGray(image.Rect(0, 0, width, height))
		copy(img.Pix, channels[0][:area])
		return img, nil
	case 3, 4:
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for i := 0; i < area; i++ {
			a := uint8(255)
			if len(channels) == 4 {
				a = channels[3][i]
			}
			img.Pix[4*i] = channels[0][i]
			img.Pix[4*i+1] = channels[1][i]
			img.Pix[4*i+2] = channels[2][i]
			img.Pix[4*i+3] = a
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported pattern channel count %d", len(channels))
	}
}

func (d *Driver) ApplyOpacity(img image.Image, opacity uint8) image.Image {
	if opacity == 255 {
		return img
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	mask := image.NewUniform(color.Alpha{A: opacity})
	draw.DrawMask(out, b, img, b.Min, mask, image.Point{}, draw.Src)
	return out
}

func (d *Driver) Crop(img image.Image, r image.Rectangle) image.Image {
	r = r.Intersect(img.Bounds())
	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

func (d *Driver) Compose(dst *image.RGBA, src image.Image, at image.Point) error {
	target := image.Rect(at.X, at.Y, at.X+src.Bounds().Dx(), at.Y+src.Bounds().Dy())
	switch src.(type) {
	case *image.NRGBA, *image.RGBA:
		// paste onto a transparent overlay of the canvas size, then
		// alpha-composite the whole overlay over the canvas
		overlay := image.NewRGBA(dst.Bounds())
		draw.Draw(overlay, target, src, src.Bounds().Min, draw.Src)
		merged := blend.Normal(dst, overlay)
		draw.Draw(dst, dst.Bounds(), merged, merged.Bounds().Min, draw.Src)
		return nil
	case *image.Gray:
		// no alpha channel: direct overwrite
		draw.Draw(dst, target, src, src.Bounds().Min, draw.Src)
		return nil
	default:
		return fmt.Errorf("unsupported source raster %T", src)
	}
}
