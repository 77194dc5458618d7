package kanoclient

import (
	"errors"

	"github.com/kano-labs/kano-api-client/internal/validate"
)

var (
	// ErrMissingSettings is returned by New when no configuration is given.
	ErrMissingSettings = errors.New("settings are required")

	// ErrMissingDefaultURL is returned by New when the configuration names
	// neither a service URL nor a gateway override.
	ErrMissingDefaultURL = errors.New("defaultUrl is required")

	// ErrMissingPassword is returned by Create when the password is empty.
	ErrMissingPassword = errors.New("password is required")

	// ErrInvalidQuery is returned by Check for queries that are not of the
	// "namespace.candidate" form.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidCredentials is returned when authentication fails, online or
	// offline. It deliberately never distinguishes an unknown user from a
	// wrong password from a missing offline record.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidEmail and ErrInvalidUsername are the validation failures for
	// the respective fields, surfaced before any network or cache access.
	ErrInvalidEmail    = validate.ErrInvalidEmail
	ErrInvalidUsername = validate.ErrInvalidUsername
)
