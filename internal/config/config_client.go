// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package config

import (
	"fmt"
	"time"
)

// Default sync scheduling values applied when no source provides them.
const (
	DefaultPullInterval      = 5 * time.Minute
	DefaultPushRetryInterval = 1 * time.Minute
	DefaultDebounceWindow    = 500 * time.Millisecond
	DefaultRequestTimeout    = 30 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the sync server base URL used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientKV contains the local durable store settings for the client.
type ClientKV struct {
	// Path is the sqlite file backing locally cached field data.
	Path string
}

// ClientSync contains the sync engine's scheduling knobs.
type ClientSync struct {
	// PullInterval is the fixed interval at which a pull is requested.
	PullInterval time.Duration
	// PushRetryInterval is the repeat interval for push retries after
	// transport failures.
	PushRetryInterval time.Duration
	// DebounceWindow is how long connectivity observations must hold stable
	// before sync eligibility reacts to them.
	DebounceWindow time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeouts.
	Adapter ClientAdapter
	// KV contains the local store settings.
	KV ClientKV
	// Sync contains sync scheduling settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset sync intervals,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		KV: ClientKV{
			Path: cfg.Storage.KV.Path,
		},
		Sync: ClientSync{
			PullInterval:      cfg.Sync.PullInterval,
			PushRetryInterval: cfg.Sync.PushRetryInterval,
			DebounceWindow:    cfg.Sync.DebounceWindow,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.PullInterval == 0 {
		cfg.Sync.PullInterval = DefaultPullInterval
	}
	if cfg.Sync.PushRetryInterval == 0 {
		cfg.Sync.PushRetryInterval = DefaultPushRetryInterval
	}
	if cfg.Sync.DebounceWindow == 0 {
		cfg.Sync.DebounceWindow = DefaultDebounceWindow
	}
}
