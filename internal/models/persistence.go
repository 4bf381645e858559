package models

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var SaveDir = ".saves"

// Save writes the session into a named slot under SaveDir, one YAML file per
// document so the world can be inspected or hand-edited between sessions.
func (s *SaveGame) Save(name string) error {
	dir := filepath.Join(SaveDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	worldData, err := yaml.Marshal(s.WorldModel)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "world.yaml"), worldData, 0644); err != nil {
		return err
	}

	logData, err := yaml.Marshal(s.AdventureLog)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "log.yaml"), logData, 0644)
}

// LoadSave reads a named slot back into a SaveGame.
func LoadSave(name string) (*SaveGame, error) {
	dir := filepath.Join(SaveDir, name)

	worldData, err := os.ReadFile(filepath.Join(dir, "world.yaml"))
	if err != nil {
		return nil, err
	}
	var world WorldModel
	if err := yaml.Unmarshal(worldData, &world); err != nil {
		return nil, err
	}

	logData, err := os.ReadFile(filepath.Join(dir, "log.yaml"))
	if err != nil {
		return nil, err
	}
	var log []AdventureLogEntry
	if err := yaml.Unmarshal(logData, &log); err != nil {
		return nil, err
	}

	return &SaveGame{WorldModel: &world, AdventureLog: log}, nil
}

// ListSaves returns the names of slots that contain a world document.
func ListSaves() ([]string, error) {
	if _, err := os.Stat(SaveDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(SaveDir)
	if err != nil {
		return nil, err
	}

	var saves []string
	for _, entry := range entries {
		if entry.IsDir() {
			worldPath := filepath.Join(SaveDir, entry.Name(), "world.yaml")
			if _, err := os.Stat(worldPath); err == nil {
				saves = append(saves, entry.Name())
			}
		}
	}
	return saves, nil
}

// ExportJSON writes the save as a single portable JSON file so saves can move
// between machines and frontends.
func (s *SaveGame) ExportJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportJSON reads a portable JSON save file.
func ImportJSON(path string) (*SaveGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var save SaveGame
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, err
	}
	return &save, nil
}
