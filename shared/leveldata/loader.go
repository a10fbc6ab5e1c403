package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from a TMX map.
const (
	GroupPigs      = "Pigs"
	GroupBlocks    = "Blocks"
	GroupPlatforms = "Platforms"
	GroupSlingshot = "Slingshot"
)

// Options convert map pixels to world units. Tiled's y axis points down,
// the world's points up.
type Options struct {
	PixelsPerUnit float64
	OriginX       float64 // World x of the map's left edge
	OriginY       float64 // World y of the map's top edge
}

func (o Options) toWorld(px, py float64) (float64, float64) {
	ppu := o.PixelsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	return o.OriginX + px/ppu, o.OriginY - py/ppu
}

// center returns the pixel centre of a Tiled object. Rectangles rotate
// clockwise about their top-left corner; points have no size.
func center(o *tiled.Object) (float64, float64) {
	if o.Width == 0 && o.Height == 0 {
		return o.X, o.Y
	}
	rad := o.Rotation * math.Pi / 180
	hw, hh := o.Width/2, o.Height/2
	cos, sin := math.Cos(rad), math.Sin(rad)
	return o.X + hw*cos - hh*sin, o.Y + hw*sin + hh*cos
}

// LoadLevel parses a TMX file into a level descriptor. Pigs and blocks use
// the object name as their type, blocks carry a "material" property,
// platforms carry "width" and "height" cell counts, and the single
// slingshot object carries the "birds" count. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
	}

	slingshots := 0
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			cx, cy := center(o)
			x, y := opts.toWorld(cx, cy)
			// Tiled rotates clockwise.
			rotation := -o.Rotation

			switch og.Name {
			case GroupPigs:
				level.Pigs = append(level.Pigs, Object{
					Type:     o.Name,
					X:        x,
					Y:        y,
					Rotation: rotation,
				})
			case GroupBlocks:
				level.Blocks = append(level.Blocks, Object{
					Type:     o.Name,
					X:        x,
					Y:        y,
					Rotation: rotation,
					Material: NormalizeMaterial(o.Properties.GetString("material")),
				})
			case GroupPlatforms:
				w, h := o.Properties.GetInt("width"), o.Properties.GetInt("height")
				if w == 0 {
					w = 1
				}
				if h == 0 {
					h = 1
				}
				level.Platforms = append(level.Platforms, Platform{
					X:        x,
					Y:        y,
					Rotation: rotation,
					Width:    w,
					Height:   h,
				})
			case GroupSlingshot:
				slingshots++
				level.Slingshot = Point{X: x, Y: y}
				level.BirdCount = o.Properties.GetInt("birds")
			}
		}
	}

	if slingshots != 1 {
		return nil, fmt.Errorf("%w: %s: expected one slingshot, found %d", ErrMissingLevelData, tmxPath, slingshots)
	}

	// Sort left-to-right so spawn order does not depend on object ids.
	sort.SliceStable(level.Pigs, func(i, j int) bool {
		return level.Pigs[i].X < level.Pigs[j].X
	})

	return level, nil
}

// LoadAllLevels loads every .tmx file in levelsDir within fsys, ordered by
// file name.
func LoadAllLevels(fsys fs.FS, levelsDir string, opts Options) ([]Level, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	levels := make([]Level, 0, len(matches))
	for _, match := range matches {
		level, err := LoadLevel(fsys, match, opts)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels = append(levels, *level)
	}
	return levels, nil
}
