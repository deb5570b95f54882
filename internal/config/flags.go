package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (server)
//	-kv key-value store path (client)
//	-base-url sync server base URL (client)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-pull-interval fixed pull request interval (e.g., "5m")
//	-push-retry-interval push retry interval (e.g., "1m")
//	-debounce-window connectivity debounce window (e.g., "500ms")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var kvPath string
	var baseURL string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var pullInterval time.Duration
	var pushRetryInterval time.Duration
	var debounceWindow time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&kvPath, "kv", "", "Key-value store path")
	flag.StringVar(&baseURL, "base-url", "", "Sync server base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&pullInterval, "pull-interval", 0, "Fixed pull request interval (e.g., 5m)")
	flag.DurationVar(&pushRetryInterval, "push-retry-interval", 0, "Push retry interval (e.g., 1m)")
	flag.DurationVar(&debounceWindow, "debounce-window", 0, "Connectivity debounce window (e.g., 500ms)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			KV: KV{
				Path: kvPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			PullInterval:      pullInterval,
			PushRetryInterval: pushRetryInterval,
			DebounceWindow:    debounceWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}
