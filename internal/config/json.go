package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	Storage struct {
		Driver string `json:"driver"`
		Key    string `json:"key"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		File struct {
			Path string `json:"path"`
		} `json:"file,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Workers struct {
		FlushInterval Duration `json:"flush_interval"`
	} `json:"workers,omitempty"`

	Export struct {
		Dir string `json:"dir"`
	} `json:"export,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			Key:    jsonCfg.Storage.Key,
			DB:     DB{DSN: jsonCfg.Storage.DB.DSN},
			File:   File{Path: jsonCfg.Storage.File.Path},
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Workers: Workers{
			FlushInterval: time.Duration(jsonCfg.Workers.FlushInterval),
		},
		Export: Export{
			Dir: jsonCfg.Export.Dir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
