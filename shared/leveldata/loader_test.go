package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="32" tileheight="32" infinite="0" nextlayerid="5" nextobjectid="10">
 <objectgroup id="1" name="Slingshot">
  <object id="1" name="Slingshot" x="64" y="320">
   <properties>
    <property name="birds" type="int" value="3"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Pigs">
  <object id="2" name="BasicMedium" x="640" y="288">
   <point/>
  </object>
  <object id="3" name="BasicSmall" x="512" y="288">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Blocks">
  <object id="4" name="RectSmall" x="576" y="300" rotation="90">
   <properties>
    <property name="material" value="Wood"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Platforms">
  <object id="5" x="320" y="192" width="64" height="32">
   <properties>
    <property name="width" type="int" value="4"/>
    <property name="height" type="int" value="2"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

var testOptions = Options{PixelsPerUnit: 32, OriginX: -2, OriginY: 10}

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level-01.tmx": {Data: []byte(sampleTMX)},
	}

	level, err := LoadLevel(fsys, "levels/level-01.tmx", testOptions)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if level.Name != "level-01" {
		t.Errorf("name = %q", level.Name)
	}
	if level.BirdCount != 3 {
		t.Errorf("birds = %d, want 3", level.BirdCount)
	}
	if level.Slingshot != (Point{X: 0, Y: 0}) {
		t.Errorf("slingshot = %+v, want origin", level.Slingshot)
	}

	if len(level.Pigs) != 2 {
		t.Fatalf("pigs = %d, want 2", len(level.Pigs))
	}
	// Sorted left to right.
	if level.Pigs[0].Type != "BasicSmall" || level.Pigs[1].Type != "BasicMedium" {
		t.Errorf("pig order = %q, %q", level.Pigs[0].Type, level.Pigs[1].Type)
	}
	if level.Pigs[0].X != 14 || level.Pigs[0].Y != 1 {
		t.Errorf("pig position = %v,%v", level.Pigs[0].X, level.Pigs[0].Y)
	}

	if len(level.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(level.Blocks))
	}
	block := level.Blocks[0]
	if block.Material != "wood" {
		t.Errorf("material = %q, want wood", block.Material)
	}
	if block.Rotation != -90 {
		t.Errorf("rotation = %v, want -90", block.Rotation)
	}

	if len(level.Platforms) != 1 {
		t.Fatalf("platforms = %d, want 1", len(level.Platforms))
	}
	p := level.Platforms[0]
	if p.Width != 4 || p.Height != 2 {
		t.Errorf("platform size = %dx%d", p.Width, p.Height)
	}
	// Rectangle centre: (320+32, 192+16) px.
	if math.Abs(p.X-9) > 1e-9 || math.Abs(p.Y-3.5) > 1e-9 {
		t.Errorf("platform centre = %v,%v", p.X, p.Y)
	}
}

func TestLoadLevelRequiresSlingshot(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Pigs">
  <object id="1" name="BasicSmall" x="64" y="64"><point/></object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(tmx)}}
	_, err := LoadLevel(fsys, "bad.tmx", testOptions)
	if !errors.Is(err, ErrMissingLevelData) {
		t.Fatalf("expected ErrMissingLevelData, got %v", err)
	}
}

func TestLoadAllLevelsSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(sampleTMX)},
		"levels/a.tmx": {Data: []byte(sampleTMX)},
	}
	levels, err := LoadAllLevels(fsys, "levels", testOptions)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "a" || levels[1].Name != "b" {
		t.Fatalf("unexpected levels %+v", levels)
	}

	if _, err := LoadAllLevels(fstest.MapFS{}, "levels", testOptions); err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}

type catalog struct{}

func (catalog) KnownPig(kind string) bool      { return kind == "BasicSmall" }
func (catalog) KnownBlock(kind string) bool    { return kind == "RectSmall" }
func (catalog) KnownMaterial(name string) bool { return name == "wood" }

func TestValidate(t *testing.T) {
	valid := func() *Level {
		return &Level{
			Name:      "test",
			Pigs:      []Object{{Type: "BasicSmall"}},
			Blocks:    []Object{{Type: "RectSmall", Material: "Wood"}},
			Platforms: []Platform{{Width: 2, Height: 1}},
			BirdCount: 1,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Level)
		ok     bool
	}{
		{"valid", func(*Level) {}, true},
		{"no birds", func(l *Level) { l.BirdCount = 0 }, false},
		{"no pigs", func(l *Level) { l.Pigs = nil }, false},
		{"unknown pig", func(l *Level) { l.Pigs[0].Type = "King" }, false},
		{"unknown block", func(l *Level) { l.Blocks[0].Type = "Hexagon" }, false},
		{"unknown material", func(l *Level) { l.Blocks[0].Material = "glass" }, false},
		{"empty platform", func(l *Level) { l.Platforms[0].Width = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(l)
			err := l.Validate(catalog{})
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrMissingLevelData) {
				t.Fatalf("expected ErrMissingLevelData, got %v", err)
			}
		})
	}
}
