// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// tokenList collects repeated -t flags.
type tokenList []string

func (t *tokenList) String() string {
	return strings.Join(*t, ",")
}

func (t *tokenList) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("token must not be empty")
	}
	*t = append(*t, s)
	return nil
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-t accepted token (repeatable)
//	-hash-key HMAC key for body signing
//	-version application version reported by /api/version
//	-request-timeout request timeout (e.g. "30s")
//	-max-body-size maximum push body in bytes
//	-backend storage backend: file, sqlite, postgres, redis
//	-f data directory for the file backend
//	-d database DSN for the sqlite/postgres backends
//	-redis-address, -redis-password, -redis-db redis connection
//	-sweep-interval, -temp-max-age temp-file sweeper settings
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("lytodo-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var tokens tokenList
	var hashKey, version string
	var requestTimeout time.Duration
	var maxBodySize int64
	var backend, dataDir, databaseDSN string
	var redisAddress, redisPassword string
	var redisDB int
	var sweepInterval, tempMaxAge time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&tokens, "t", "Accepted token (repeatable)")
	fs.StringVar(&hashKey, "hash-key", "", "HMAC key for body signing")
	fs.StringVar(&version, "version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodySize, "max-body-size", 0, "Maximum push body size in bytes")
	fs.StringVar(&backend, "backend", "", "Storage backend: file, sqlite, postgres, redis")
	fs.StringVar(&dataDir, "f", "", "Data directory for the file backend")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&redisPassword, "redis-password", "", "Redis password")
	fs.IntVar(&redisDB, "redis-db", 0, "Redis database number")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Temp-file sweep interval")
	fs.DurationVar(&tempMaxAge, "temp-max-age", 0, "Minimum age of a temp file before it is swept")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Tokens:  tokens,
			HashKey: hashKey,
			Version: version,
		},
		Storage: Storage{
			Backend: backend,
			Files:   Files{DataDir: dataDir},
			DB:      DB{DSN: databaseDSN},
			Redis: Redis{
				Address:  redisAddress,
				Password: redisPassword,
				DB:       redisDB,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodySize:    maxBodySize,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
			TempMaxAge:    tempMaxAge,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string if neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any host other than "localhost" must
// be a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
