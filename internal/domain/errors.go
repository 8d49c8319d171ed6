package domain

import "errors"

// Domain errors returned by repository implementations and validated
// constructors. HTTP handlers map these to response codes.

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrMemberNotFound indicates the specified member does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrTeamNotFound indicates the specified team does not exist.
	ErrTeamNotFound = errors.New("team not found")

	// ErrSettingsNotFound indicates no sprint settings row has been
	// persisted yet.
	ErrSettingsNotFound = errors.New("sprint settings not found")

	// ErrInvalidID indicates the provided ID format is invalid.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrInvalidDate indicates a date string is not ISO 8601 (YYYY-MM-DD).
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidAvailability indicates an availability value outside
	// the accepted encodings ('1', '0.5', 'X').
	ErrInvalidAvailability = errors.New("invalid availability value")

	// ErrNameRequired indicates a missing team or member name.
	ErrNameRequired = errors.New("name is required")
)
