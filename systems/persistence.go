package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"

	"github.com/hoopshot/hoopshot/components"
)

// SavedSettings represents the display settings stored on disk. Simulation
// and score state are never persisted.
type SavedSettings struct {
	CameraView int  `json:"cameraView"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// startView is the camera view applied when the court scene is built
var startView = components.ViewSide

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hoopshot",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings derived from the camera component
func SaveCurrentSettings(cam *components.CameraData) {
	saved := &SavedSettings{
		CameraView: int(cam.View),
		Fullscreen: ebiten.IsFullscreen(),
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings during startup, before any scene
// exists. The camera view is picked up when the court scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.CameraView >= 0 && saved.CameraView < int(components.ViewCount) {
		startView = components.ViewID(saved.CameraView)
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// StartView returns the camera view restored from saved settings
func StartView() components.ViewID {
	return startView
}
