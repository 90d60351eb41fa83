// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid credential store settings
	// (for example, unknown driver or missing DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidEngineConfigs indicates invalid game engine settings.
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost outside the supported range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
