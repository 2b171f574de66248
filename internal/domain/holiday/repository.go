package holiday

import (
	"context"
	"time"
)

type Repository interface {
	// ListActiveRange returns active holidays with from <= date < to.
	ListActiveRange(ctx context.Context, from, to time.Time) ([]PublicHoliday, error)
}
