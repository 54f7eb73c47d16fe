// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "rest-kit.db"
	DefaultUploadDir      = "media"
	DefaultTokenIssuer    = "go-rest-kit"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultLimitPerPage   = 20
	DefaultMaxLimit       = 1000
	DefaultThrottleBurst  = 10
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       "N/A",
		},
		Storage: Storage{
			DB: DBConfig{
				DSN:          DefaultDSN,
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			Files: Files{
				UploadDir: DefaultUploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		API: API{
			LimitPerPage:  DefaultLimitPerPage,
			MaxLimit:      DefaultMaxLimit,
			ThrottleBurst: DefaultThrottleBurst,
		},
	}
}
