// Package config loads and merges the application configuration from
// environment variables (including an optional .env file), command-line
// flags, and an optional JSON file. Earlier sources win for non-zero fields;
// defaults fill whatever remains unset.
package config
