package systems

import (
	"encoding/json"
	"testing"

	"github.com/hoopshot/hoopshot/components"
)

func TestSavedSettingsSurviveSerialization(t *testing.T) {
	in := SavedSettings{CameraView: int(components.ViewTop), Fullscreen: true}

	data, err := json.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out SavedSettings
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("settings after cycle = %+v, want %+v", out, in)
	}
}

func TestApplySavedSettingsRestoresView(t *testing.T) {
	defer func(v components.ViewID) { startView = v }(startView)
	startView = components.ViewSide

	ApplySavedSettingsGlobal(&SavedSettings{CameraView: int(components.ViewTop)})
	if StartView() != components.ViewTop {
		t.Errorf("start view = %v, want top", StartView())
	}
}

func TestApplySavedSettingsRejectsUnknownView(t *testing.T) {
	defer func(v components.ViewID) { startView = v }(startView)
	startView = components.ViewSide

	ApplySavedSettingsGlobal(&SavedSettings{CameraView: int(components.ViewCount)})
	if StartView() != components.ViewSide {
		t.Errorf("out-of-range view replaced the default: %v", StartView())
	}

	ApplySavedSettingsGlobal(&SavedSettings{CameraView: -1})
	if StartView() != components.ViewSide {
		t.Errorf("negative view replaced the default: %v", StartView())
	}

	// Nothing saved yet: defaults stay untouched
	ApplySavedSettingsGlobal(nil)
	if StartView() != components.ViewSide {
		t.Errorf("nil settings replaced the default: %v", StartView())
	}
}

func TestSettingsNoopWithoutManager(t *testing.T) {
	// Before InitPersistence runs, loads report nothing saved and saves
	// silently succeed; the game never blocks on missing storage.
	saved, err := LoadSettings()
	if saved != nil || err != nil {
		t.Errorf("load without manager = (%+v, %v), want (nil, nil)", saved, err)
	}
	if err := SaveSettings(&SavedSettings{Fullscreen: true}); err != nil {
		t.Errorf("save without manager returned %v", err)
	}
}
