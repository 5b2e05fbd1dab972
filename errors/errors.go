package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrEntityNotFound    = fmt.Errorf("entity not found")
	ErrNotInPool         = fmt.Errorf("object not in pool")
	ErrUnexpectedType    = fmt.Errorf("unexpected entity type")
	ErrMalformedProperty = fmt.Errorf("malformed property value")
	ErrNotPersisted      = fmt.Errorf("object has not been registered")
	ErrStoreUnavailable  = fmt.Errorf("entity store unavailable")
	ErrUnknownDriver     = fmt.Errorf("unknown store driver")
	ErrPhoneAlreadyUsed  = fmt.Errorf("phone number already used")
	ErrInvalidUser       = fmt.Errorf("invalid user")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
