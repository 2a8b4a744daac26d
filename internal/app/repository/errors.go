package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("conflict")
	ErrValidation             = errors.New("validation failed")
	ErrDependents             = errors.New("has dependent records")
	ErrOwnerMismatch          = errors.New("owner email mismatch")
	ErrUnknownCertificateType = errors.New("unknown certificate type")
	ErrShipNotActive          = errors.New("ship not active")
	ErrUnauthorized           = errors.New("invalid credentials")
)

// Error carries a client facing message and unwraps to one of the sentinels above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// translate maps storage errors onto the sentinels; anything else is returned as is.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
