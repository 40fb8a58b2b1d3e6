package backend

import "errors"

// Native backend errors. Messages match what the hosted service reports so
// message catalogs can match on them.
var (
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrSessionMissing     = errors.New("Auth session missing!")
	ErrUserExists         = errors.New("User already registered")
	ErrSamePassword       = errors.New("New password should be different from the old password.")
	ErrUserNotFound       = errors.New("User not found")
	ErrNotFound           = errors.New("JSON object requested, multiple (or no) rows returned: not found")
	ErrPermissionDenied   = errors.New("permission denied: new row violates row-level security policy")
	ErrDuplicate          = errors.New("duplicate key value violates unique constraint")
	ErrInvalidReference   = errors.New("insert or update violates foreign key constraint")
)
