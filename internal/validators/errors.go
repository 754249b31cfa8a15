package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSnapshot = errors.New("invalid snapshot")

	ErrEmptyID            = fmt.Errorf("%w: id is required", ErrInvalidSnapshot)
	ErrDuplicateID        = fmt.Errorf("%w: duplicate id", ErrInvalidSnapshot)
	ErrEmptyTitle         = fmt.Errorf("%w: title is required", ErrInvalidSnapshot)
	ErrEmptyName          = fmt.Errorf("%w: name is required", ErrInvalidSnapshot)
	ErrInvalidPriority    = fmt.Errorf("%w: invalid priority", ErrInvalidSnapshot)
	ErrInvalidStatus      = fmt.Errorf("%w: invalid status", ErrInvalidSnapshot)
	ErrInvalidAmount      = fmt.Errorf("%w: invalid amount", ErrInvalidSnapshot)
	ErrInvalidHistoryType = fmt.Errorf("%w: invalid history type", ErrInvalidSnapshot)
	ErrOwnerIDMismatch    = fmt.Errorf("%w: owner id does not match key", ErrInvalidSnapshot)
	ErrInvalidEventTime   = fmt.Errorf("%w: invalid event time", ErrInvalidSnapshot)
)
