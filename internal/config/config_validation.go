// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - both signing secrets must be present;
//   - the access and refresh secrets must differ, otherwise the two token
//     kinds would be interchangeable;
//   - the database DSN must be present.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.AccessTokenSignKey == "" || cfg.Auth.RefreshTokenSignKey == "" {
		return ErrMissingSignKeys
	}

	if cfg.Auth.AccessTokenSignKey == cfg.Auth.RefreshTokenSignKey {
		return ErrIdenticalSignKeys
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
