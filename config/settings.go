package config

import "maps"

// Settings is a snapshot of every tuning table. Systems receive one at
// construction and never read the package globals themselves.
type Settings struct {
	Bird      BirdConfig
	Physics   PhysicsConfig
	Round     RoundConfig
	Damage    DamageConfig
	Pigs      map[string]PigTypeConfig
	Blocks    map[string]BlockTypeConfig
	Materials map[string]MaterialConfig
	Platform  PlatformConfig
	Camera    CameraConfig
}

// Current copies the package level configuration.
func Current() Settings {
	return Settings{
		Bird:      Bird,
		Physics:   Physics,
		Round:     Round,
		Damage:    Damage,
		Pigs:      maps.Clone(Pigs),
		Blocks:    maps.Clone(Blocks),
		Materials: maps.Clone(Materials),
		Platform:  Platform,
		Camera:    Camera,
	}
}

// KnownPig reports whether kind names a configured pig type.
func (s Settings) KnownPig(kind string) bool {
	_, ok := s.Pigs[kind]
	return ok
}

// KnownBlock reports whether kind names a configured block type.
func (s Settings) KnownBlock(kind string) bool {
	_, ok := s.Blocks[kind]
	return ok
}

// KnownMaterial reports whether name is a configured material.
func (s Settings) KnownMaterial(name string) bool {
	_, ok := s.Materials[name]
	return ok
}
