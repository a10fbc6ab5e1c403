package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/slingshot/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	TimesToGiveUp     int     `json:"timesToGiveUp"`
	IdleHops          bool    `json:"idleHops"`
	StabilityEpsilon  float64 `json:"stabilityEpsilon"`
	FrameScaledLaunch bool    `json:"frameScaledLaunch"`
}

// Store keeps user settings between runs.
type Store struct {
	manager *gdata.Manager
}

// OpenStore opens the settings store for the app. A store that fails to
// open is still usable; it just never loads or saves anything.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return &Store{}, err
	}
	return &Store{manager: m}, nil
}

// Load returns the saved settings, or nil when nothing was saved yet.
func (s *Store) Load() (*SavedSettings, error) {
	if s == nil || s.manager == nil {
		return nil, nil
	}

	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return decodeSettings(data)
}

// decodeSettings parses stored settings. Empty data means nothing was saved.
func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &saved, nil
}

// Save writes the settings to disk.
func (s *Store) Save(saved *SavedSettings) error {
	if s == nil || s.manager == nil || saved == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		log.Warn("could not serialize settings", "err", err)
		return err
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// CaptureSettings builds the saved form of the given settings.
func CaptureSettings(s config.Settings) *SavedSettings {
	return &SavedSettings{
		TimesToGiveUp:     s.Round.TimesToGiveUp,
		IdleHops:          s.Bird.IdleHops,
		StabilityEpsilon:  s.Round.StabilityEpsilon,
		FrameScaledLaunch: s.Bird.FrameScaledLaunch,
	}
}

// ApplySavedSettings overlays saved values onto s. Values that could never
// produce a playable round are ignored.
func ApplySavedSettings(s *config.Settings, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.TimesToGiveUp > 0 {
		s.Round.TimesToGiveUp = saved.TimesToGiveUp
	}
	if saved.StabilityEpsilon >= 0 {
		s.Round.StabilityEpsilon = saved.StabilityEpsilon
	}
	s.Bird.IdleHops = saved.IdleHops
	s.Bird.FrameScaledLaunch = saved.FrameScaledLaunch
}
