// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env file in the working
// directory, loaded once per process) and github.com/caarlos0/env/v11 (struct
// tag parsing) behind two entry points:
//
//   - Load caches each configuration type after the first successful parse.
//     Use it for process-wide settings such as the listen address.
//   - Read parses the environment on every call. Use it for settings that are
//     validated lazily per request, such as provider credentials.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var srv ServerConfig
//	config.MustLoad(&srv)
//
//	var creds spotify.Config
//	if err := config.Read(&creds); err != nil {
//	    // per-request error
//	}
//
// # Error Handling
//
// Errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – an explicit LoadEnv file is missing or malformed.
//   - ErrNilPointer     – nil pointer passed to Load, MustLoad or Read.
//
// ResetCache clears cached values between tests.
package config
