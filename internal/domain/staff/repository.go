package staff

import (
	"context"
	"time"
)

// Repository reads the staff roster.
type Repository interface {
	// ListActive returns every staff member currently flagged active,
	// ordered by name.
	ListActive(ctx context.Context) ([]Staff, error)

	// GetByID retrieves one staff member.
	GetByID(ctx context.Context, id string) (Staff, error)
}

// CompensationRepository reads pay contracts.
type CompensationRepository interface {
	// ListEffectiveAt returns every compensation record effective at the
	// given instant (effective_from <= at AND (effective_to IS NULL OR
	// effective_to >= at)). Staff with no effective record are simply
	// absent from the result; completeness is the caller's problem.
	ListEffectiveAt(ctx context.Context, at time.Time) ([]Compensation, error)
}
