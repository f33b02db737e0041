package fleet

import (
	"errors"
	"testing"
)

func TestValidateCapacity(t *testing.T) {
	if err := ValidateCapacity(500, 1000); err != nil {
		t.Fatalf("expected 500kg in a 1000kg vehicle to pass, got %v", err)
	}
	// loading to the rated limit is fine
	if err := ValidateCapacity(1000, 1000); err != nil {
		t.Fatalf("expected exact capacity to pass, got %v", err)
	}

	err := ValidateCapacity(1200, 1000)
	if err == nil {
		t.Fatalf("expected overweight cargo to fail")
	}
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CapacityError, got %T", err)
	}
	if capErr.CargoWeight != 1200 || capErr.MaxCapacity != 1000 {
		t.Fatalf("unexpected error payload: %+v", capErr)
	}
	if !IsValidation(err) {
		t.Fatalf("capacity violation should classify as validation")
	}
}
