// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Required: the HTTP address, the database DSN and the token sign key.
// When the Redis cache is enabled, its TTL and pool size must be positive.
//
// Returns nil if the configuration is valid, or every violation joined
// together otherwise.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Cache.RedisURL != "" && (cfg.Storage.Cache.TTL <= 0 || cfg.Storage.Cache.PoolSize <= 0) {
		err = errors.Join(err, ErrInvalidCacheConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	return err
}
