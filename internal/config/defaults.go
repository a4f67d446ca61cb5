package config

import "time"

// Built-in fallback values. Signing secrets and the database DSN have no
// defaults on purpose: they must come from the environment, flags, or the
// JSON file, and validation rejects a config without them.
const (
	DefaultHTTPAddress          = "0.0.0.0:8080"
	DefaultTokenIssuer          = "expense-tracker"
	DefaultAccessTokenDuration  = time.Hour
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultRequestTimeout       = 30 * time.Second
	DefaultBcryptCost           = 10
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			BcryptCost:           DefaultBcryptCost,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
