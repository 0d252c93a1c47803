package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors the subset of [StructuredConfig] that may be
// supplied through a JSON file. Field names follow the json tags below.
type StructuredJSONConfig struct {
	App struct {
		APIKey string `json:"api_key"`
	} `json:"app,omitempty"`

	Server struct {
		Address string `json:"address"`
		Port    int    `json:"port"`
	} `json:"server,omitempty"`

	Storage struct {
		DB DB `json:"db"`
	} `json:"storage,omitempty"`
}

// parseJSON reads the file at path and converts it into a *StructuredConfig
// suitable for merging with the env and flag layers.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIKey: jsonCfg.App.APIKey,
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.Address,
			Port:        jsonCfg.Server.Port,
		},
		Storage: Storage{
			DB: jsonCfg.Storage.DB,
		},
	}, nil
}
