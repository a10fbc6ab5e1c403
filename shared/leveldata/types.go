// Package leveldata describes levels and decodes them from TMX files.
// It has no dependencies on ebitengine, donburi, or the physics engine: pure data only.
package leveldata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingLevelData is wrapped by every validation failure, so callers can
// tell a malformed level from an I/O error with errors.Is.
var ErrMissingLevelData = errors.New("missing level data")

// Level is a level descriptor. Coordinates are world units with y up;
// rotations are degrees counter-clockwise.
type Level struct {
	Name      string
	Pigs      []Object
	Blocks    []Object
	Platforms []Platform
	BirdCount int
	Slingshot Point
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// Object is a pig or block placement. Material is empty for pigs.
type Object struct {
	Type     string
	X, Y     float64
	Rotation float64
	Material string
}

// Platform is a static grid of Width × Height cells sharing one transform.
type Platform struct {
	X, Y     float64
	Rotation float64
	Width    int
	Height   int
}

// Catalog reports which type names the game knows how to build.
type Catalog interface {
	KnownPig(kind string) bool
	KnownBlock(kind string) bool
	KnownMaterial(name string) bool
}

// NormalizeMaterial maps material names onto the lower-case form the
// catalog uses.
func NormalizeMaterial(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate checks the level can be built without touching the world. The
// returned error wraps ErrMissingLevelData.
func (l *Level) Validate(c Catalog) error {
	if l == nil {
		return fmt.Errorf("%w: nil level", ErrMissingLevelData)
	}
	if l.BirdCount < 1 {
		return fmt.Errorf("%w: %s: no birds", ErrMissingLevelData, l.Name)
	}
	if len(l.Pigs) == 0 {
		return fmt.Errorf("%w: %s: no pigs", ErrMissingLevelData, l.Name)
	}
	for i, p := range l.Pigs {
		if !c.KnownPig(p.Type) {
			return fmt.Errorf("%w: %s: pig %d: unknown type %q", ErrMissingLevelData, l.Name, i, p.Type)
		}
	}
	for i, b := range l.Blocks {
		if !c.KnownBlock(b.Type) {
			return fmt.Errorf("%w: %s: block %d: unknown type %q", ErrMissingLevelData, l.Name, i, b.Type)
		}
		if !c.KnownMaterial(NormalizeMaterial(b.Material)) {
			return fmt.Errorf("%w: %s: block %d: unknown material %q", ErrMissingLevelData, l.Name, i, b.Material)
		}
	}
	for i, p := range l.Platforms {
		if p.Width < 1 || p.Height < 1 {
			return fmt.Errorf("%w: %s: platform %d: bad size %dx%d", ErrMissingLevelData, l.Name, i, p.Width, p.Height)
		}
	}
	return nil
}
