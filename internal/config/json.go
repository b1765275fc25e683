// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// are written as strings ("30s", "10m") and parsed with time.ParseDuration.
type StructuredJSONConfig struct {
	Tokens         []string `json:"tokens"`
	HashKey        string   `json:"hash_key"`
	Version        string   `json:"version"`
	Address        string   `json:"address"`
	RequestTimeout string   `json:"request_timeout"`
	MaxBodySize    int64    `json:"max_body_size"`
	Backend        string   `json:"storage_backend"`
	DataDir        string   `json:"data_dir"`
	DatabaseDSN    string   `json:"database_dsn"`
	RedisAddress   string   `json:"redis_address"`
	RedisPassword  string   `json:"redis_password"`
	RedisDB        int      `json:"redis_db"`
	SweepInterval  string   `json:"sweep_interval"`
	TempMaxAge     string   `json:"temp_max_age"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling json config: %w", err)
	}

	requestTimeout, err := parseOptionalDuration(jsonCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid request_timeout: %w", err)
	}
	sweepInterval, err := parseOptionalDuration(jsonCfg.SweepInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep_interval: %w", err)
	}
	tempMaxAge, err := parseOptionalDuration(jsonCfg.TempMaxAge)
	if err != nil {
		return nil, fmt.Errorf("invalid temp_max_age: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Tokens:  jsonCfg.Tokens,
			HashKey: jsonCfg.HashKey,
			Version: jsonCfg.Version,
		},
		Storage: Storage{
			Backend: jsonCfg.Backend,
			Files:   Files{DataDir: jsonCfg.DataDir},
			DB:      DB{DSN: jsonCfg.DatabaseDSN},
			Redis: Redis{
				Address:  jsonCfg.RedisAddress,
				Password: jsonCfg.RedisPassword,
				DB:       jsonCfg.RedisDB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Address,
			RequestTimeout: requestTimeout,
			MaxBodySize:    jsonCfg.MaxBodySize,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
			TempMaxAge:    tempMaxAge,
		},
	}, nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
