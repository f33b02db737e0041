package fleet

import (
	"fleetflow/internal/models"
)

// allowedTransitions is the full table of legal trip status flows.
// Draft may be cancelled without ever dispatching (a mis-created trip holds
// no resources, so there is nothing to release), but it cannot jump
// straight to Completed. Terminal states allow no exit.
var allowedTransitions = map[models.TripStatus][]models.TripStatus{
	models.TripDraft:      {models.TripDispatched, models.TripCancelled},
	models.TripDispatched: {models.TripCompleted, models.TripCancelled},
	models.TripCompleted:  {},
	models.TripCancelled:  {},
}

// CanTransition reports whether from -> to is a legal trip status flow.
func CanTransition(from, to models.TripStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
