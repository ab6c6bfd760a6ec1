package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] for JSON decoding. Durations are decoded
// through the [Duration] wrapper so both "4h" strings and raw nanosecond
// numbers are accepted. The session token and the config file path are
// intentionally absent: neither may be sourced from a file on disk.
type JSONConfig struct {
	Debug           bool     `json:"debug,omitempty"`
	FolderName      string   `json:"foldername,omitempty"`
	CustomField     string   `json:"customfield,omitempty"`
	PassphraseField string   `json:"passphrasefield,omitempty"`
	Lifetime        Duration `json:"lifetime,omitempty"`
	ServeURL        string   `json:"serveurl,omitempty"`
	Clip            bool     `json:"clip,omitempty"`
	NoPrompt        bool     `json:"noprompt,omitempty"`
	RequireKeys     bool     `json:"requirekeys,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Debug:           jsonCfg.Debug,
		FolderName:      jsonCfg.FolderName,
		CustomField:     jsonCfg.CustomField,
		PassphraseField: jsonCfg.PassphraseField,
		Lifetime:        time.Duration(jsonCfg.Lifetime),
		ServeURL:        jsonCfg.ServeURL,
		Clip:            jsonCfg.Clip,
		NoPrompt:        jsonCfg.NoPrompt,
		RequireKeys:     jsonCfg.RequireKeys,
		JSONFilePath:    "",
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
