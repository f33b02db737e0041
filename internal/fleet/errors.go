package fleet

import (
	"errors"
	"fmt"
)

// Error classes. Validation and not-found errors go back to the caller for
// correction and must never be retried; ErrStorage is the only class that
// is safe to retry, because no partial write ever commits.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrDriverSuspended    = errors.New("driver is suspended")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrStorage            = errors.New("storage error")
)

// CapacityError reports cargo weight exceeding the vehicle's rated capacity.
type CapacityError struct {
	CargoWeight float64
	MaxCapacity float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cargo weight (%gkg) exceeds vehicle capacity (%gkg)", e.CargoWeight, e.MaxCapacity)
}

// IsValidation reports whether err is user-correctable input, as opposed to
// a missing record or a transient storage failure.
func IsValidation(err error) bool {
	var capErr *CapacityError
	return errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrDriverSuspended) ||
		errors.Is(err, ErrVehicleUnavailable) ||
		errors.As(err, &capErr)
}
