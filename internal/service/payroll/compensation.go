package payroll

import (
	"context"
	"time"

	"github.com/lengolf/backoffice-go/internal/domain/staff"
)

// CompensationResolver maps staff ids to the pay contract effective for
// the target month. It only loads; completeness against the roster is
// validated by the engine, which fails loudly on gaps.
type CompensationResolver struct {
	repo staff.CompensationRepository
}

func NewCompensationResolver(repo staff.CompensationRepository) *CompensationResolver {
	return &CompensationResolver{repo: repo}
}

// Resolve returns staff id → effective compensation at monthEnd. If
// multiple records overlap (a data entry error), the latest
// effective-from wins.
func (r *CompensationResolver) Resolve(ctx context.Context, monthEnd time.Time) (map[string]staff.Compensation, error) {
	records, err := r.repo.ListEffectiveAt(ctx, monthEnd)
	if err != nil {
		return nil, err
	}

	result := make(map[string]staff.Compensation, len(records))
	for _, rec := range records {
		existing, ok := result[rec.StaffID]
		if !ok || rec.EffectiveFrom.After(existing.EffectiveFrom) {
			result[rec.StaffID] = rec
		}
	}
	return result, nil
}
