package models

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	oldDir := SaveDir
	SaveDir = t.TempDir()
	defer func() { SaveDir = oldDir }()

	save := &SaveGame{
		WorldModel: testModel(),
		AdventureLog: []AdventureLogEntry{
			{Type: LogNarrative, Content: "Your adventure begins."},
			{Type: LogCommand, Content: "look"},
		},
	}

	if err := save.Save("slot-one"); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := LoadSave("slot-one")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if loaded.WorldModel.WorldState.CurrentLocation != "The Shore" {
		t.Errorf("Expected current location The Shore, got %s", loaded.WorldModel.WorldState.CurrentLocation)
	}
	if len(loaded.AdventureLog) != 2 {
		t.Errorf("Expected 2 log entries, got %d", len(loaded.AdventureLog))
	}
	if loaded.AdventureLog[1].Type != LogCommand {
		t.Errorf("Expected second entry to be a command, got %s", loaded.AdventureLog[1].Type)
	}

	saves, err := ListSaves()
	if err != nil {
		t.Fatalf("Failed to list saves: %v", err)
	}
	if len(saves) != 1 || saves[0] != "slot-one" {
		t.Errorf("Expected [slot-one], got %v", saves)
	}
}

func TestListSavesMissingDir(t *testing.T) {
	oldDir := SaveDir
	SaveDir = filepath.Join(t.TempDir(), "does-not-exist")
	defer func() { SaveDir = oldDir }()

	saves, err := ListSaves()
	if err != nil {
		t.Fatalf("Expected no error for missing save dir, got %v", err)
	}
	if len(saves) != 0 {
		t.Errorf("Expected no saves, got %v", saves)
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	save := &SaveGame{
		WorldModel:   testModel(),
		AdventureLog: []AdventureLogEntry{{Type: LogNarrative, Content: "Begin."}},
	}
	if err := save.ExportJSON(path); err != nil {
		t.Fatalf("Failed to export: %v", err)
	}

	loaded, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("Failed to import: %v", err)
	}
	if err := loaded.WorldModel.Validate(); err != nil {
		t.Errorf("Imported world failed validation: %v", err)
	}
	if len(loaded.WorldModel.Objects) != 2 {
		t.Errorf("Expected 2 objects after round trip, got %d", len(loaded.WorldModel.Objects))
	}
}
