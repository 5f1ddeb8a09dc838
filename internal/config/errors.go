package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the server
// runs in production mode without its critical settings.
var (
	// ErrMissingDatabaseURI is returned when no primary database DSN is
	// configured in production mode.
	ErrMissingDatabaseURI = errors.New("missing database URI (STORAGE_DB_DATABASE_URI)")

	// ErrMissingTokenSignKey is returned when no JWT signing key is
	// configured in production mode.
	ErrMissingTokenSignKey = errors.New("missing token sign key (APP_TOKEN_SIGN_KEY)")
)
