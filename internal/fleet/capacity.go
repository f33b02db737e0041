package fleet

// ValidateCapacity checks cargo weight against a vehicle's rated capacity.
// Pure, no side effects. Returns *CapacityError on violation.
func ValidateCapacity(cargoWeight, maxCapacity float64) error {
	if cargoWeight > maxCapacity {
		return &CapacityError{CargoWeight: cargoWeight, MaxCapacity: maxCapacity}
	}
	return nil
}
