package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// ErrValidation wraps every input rejection below.
	ErrValidation         = errors.New("validation failed")
	ErrInvalidName        = fmt.Errorf("%w: name must have 1 to 100 characters", ErrValidation)
	ErrInvalidAge         = fmt.Errorf("%w: age must be between 1 and 120", ErrValidation)
	ErrInvalidEmail       = fmt.Errorf("%w: email must be a valid address", ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: description must have 1 to 200 characters", ErrValidation)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be between 0.01 and 9999999999999999.99 with at most two decimal places", ErrValidation)
	ErrInvalidKind        = fmt.Errorf("%w: kind must be income or expense", ErrValidation)
	ErrTotalLimit         = fmt.Errorf("%w: the user's total for this kind would exceed 90000000000000000.00", ErrValidation)
)
