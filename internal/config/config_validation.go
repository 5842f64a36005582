// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The existence of the data directory and the shape of the encryption key
// are checked later by the storage constructor, which owns those rules.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DataDir == "" {
		return fmt.Errorf("%w: data directory is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.UserDBPath == "" {
		return fmt.Errorf("%w: user database path is empty", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
