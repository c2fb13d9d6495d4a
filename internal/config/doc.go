// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, a .env file and the environment.
// Components receive the typed section they need rather than reading
// environment variables themselves.
package config
