package psdimage

import "fmt"

// Pattern is a texture referenced by fill layers through their tagged
// blocks.
type Pattern struct {
	rec *PatternRecord
}

// ID is the pattern UUID.
func (p *Pattern) ID() string { return p.rec.ID }

// Name of the pattern.
func (p *Pattern) Name() string { return p.rec.Name }

// Width of the pattern.
func (p *Pattern) Width() int { return p.rec.Point[1] }

// Height of the pattern.
func (p *Pattern) Height() int { return p.rec.Point[0] }

// Size of the pattern.
func (p *Pattern) Size() Size { return Size{p.Width(), p.Height()} }

// Channels exposes the decoded channel planes, for raster drivers.
func (p *Pattern) Channels() [][]uint8 { return p.rec.Channels }

func (p *Pattern) String() string {
	return fmt.Sprintf("pattern %q: %dx%d", p.Name(), p.Width(), p.Height())
}
