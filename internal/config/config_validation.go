// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.UploadDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	api := cfg.API
	if api.LimitPerPage < 0 || api.MaxLimit < 0 || api.ThrottleRate < 0 || api.ThrottleBurst < 0 {
		return ErrInvalidAPIConfigs
	}
	if api.MaxLimit > 0 && api.LimitPerPage > api.MaxLimit {
		return ErrInvalidAPIConfigs
	}

	return nil
}
