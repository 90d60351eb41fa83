// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s")
//	-shutdown-timeout graceful shutdown timeout
//	-storage-driver mongo | postgres | sqlite
//	-mongo-uri, -mongo-database, -mongo-collection MongoDB settings
//	-d database DSN for the SQL drivers
//	-storage-timeout timeout of a single store operation
//	-e engine base URL
//	-engine-timeout timeout of a single engine call
//	-board-shape triangular | square
//	-board-keys comma separated engine board keys
//	-log-level zerolog level
//	-bcrypt-cost bcrypt work factor
//	-unify-login-errors same message for unknown user and wrong password
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout, shutdownTimeout, storageTimeout, engineTimeout time.Duration
	var storageDriver, mongoURI, mongoDatabase, mongoCollection, databaseDSN string
	var engineAddress, boardShape, boardKeys string
	var logLevel string
	var bcryptCost int
	var unifyLoginErrors bool
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&storageDriver, "storage-driver", "", "Credential store driver: mongo, postgres or sqlite")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI")
	fs.StringVar(&mongoDatabase, "mongo-database", "", "MongoDB database")
	fs.StringVar(&mongoCollection, "mongo-collection", "", "MongoDB users collection")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&storageTimeout, "storage-timeout", 0, "Store operation timeout")
	fs.StringVar(&engineAddress, "e", "", "Game engine base URL")
	fs.DurationVar(&engineTimeout, "engine-timeout", 0, "Game engine call timeout")
	fs.StringVar(&boardShape, "board-shape", "", "Board shape: triangular or square")
	fs.StringVar(&boardKeys, "board-keys", "", "Comma separated keys the engine may nest its board under")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt work factor")
	fs.BoolVar(&unifyLoginErrors, "unify-login-errors", false, "Same login error for unknown user and wrong password")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:         logLevel,
			BcryptCost:       bcryptCost,
			UnifyLoginErrors: unifyLoginErrors,
		},
		Storage: Storage{
			Driver: storageDriver,
			Mongo: Mongo{
				URI:        mongoURI,
				Database:   mongoDatabase,
				Collection: mongoCollection,
			},
			DB: DB{
				DSN: databaseDSN,
			},
			Timeout: storageTimeout,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Engine: Engine{
			Address:        engineAddress,
			RequestTimeout: engineTimeout,
			BoardShape:     boardShape,
			BoardKeys:      splitList(boardKeys),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
