// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"

	"github.com/gillani-market/shoprent/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActingUserCtxKey is the key under which the authentication middleware
// stores the fully loaded acting identity (password excluded).
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ActingUserCtxKey, user)
var ActingUserCtxKey = contextKey("actingUser")

// GetActingUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetActingUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetActingUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ActingUserCtxKey).(models.User)
	return user, ok
}
