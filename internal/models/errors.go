package models

import "errors"

// Validation errors. Raised at the point of attempted storage with the
// offending raw input wrapped into the message; recoverable by retrying
// with corrected input.
var (
	ErrInvalidTag     = errors.New("invalid tag")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidGroupID = errors.New("invalid group id")
	ErrEmptyName      = errors.New("name cannot be empty")
)

// Not-found errors. Raised by lookups or mutations targeting a missing entity.
var (
	ErrContactNotFound = errors.New("contact not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrPhoneNotFound   = errors.New("phone not found")
	ErrGroupNotFound   = errors.New("group not found")
)

// Conflict errors. Raised when an operation would violate a uniqueness or
// precondition invariant.
var (
	ErrDuplicateContact = errors.New("contact already exists")
	ErrDuplicateNote    = errors.New("note already exists")
	ErrDuplicatePhone   = errors.New("phone already exists")
	ErrDuplicateGroup   = errors.New("group already exists")
	ErrGroupNotEmpty    = errors.New("group is not empty")
)
