// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	App struct {
		LogLevel         string `json:"log_level"`
		BcryptCost       int    `json:"bcrypt_cost"`
		UnifyLoginErrors bool   `json:"unify_login_errors"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		Mongo  struct {
			URI        string `json:"uri"`
			Database   string `json:"database"`
			Collection string `json:"collection"`
		} `json:"mongo,omitempty"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Timeout Duration `json:"timeout"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Engine struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		BoardShape     string   `json:"board_shape"`
		BoardKeys      []string `json:"board_keys"`
	} `json:"engine,omitempty"`
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
		App: App{
			LogLevel:         jsonCfg.App.LogLevel,
			BcryptCost:       jsonCfg.App.BcryptCost,
			UnifyLoginErrors: jsonCfg.App.UnifyLoginErrors,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			Mongo: Mongo{
				URI:        jsonCfg.Storage.Mongo.URI,
				Database:   jsonCfg.Storage.Mongo.Database,
				Collection: jsonCfg.Storage.Mongo.Collection,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Timeout: time.Duration(jsonCfg.Storage.Timeout),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Engine: Engine{
			Address:        jsonCfg.Engine.Address,
			RequestTimeout: time.Duration(jsonCfg.Engine.RequestTimeout),
			BoardShape:     jsonCfg.Engine.BoardShape,
			BoardKeys:      jsonCfg.Engine.BoardKeys,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
