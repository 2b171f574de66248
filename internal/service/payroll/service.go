package payroll

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	holidaydomain "github.com/lengolf/backoffice-go/internal/domain/holiday"
	"github.com/lengolf/backoffice-go/internal/domain/payroll"
	"github.com/lengolf/backoffice-go/internal/domain/staff"
	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
	"github.com/lengolf/backoffice-go/internal/pkg/cache"
	"github.com/lengolf/backoffice-go/internal/pkg/retry"
	"github.com/lengolf/backoffice-go/internal/service/settings"
)

// Cache operation identifiers. Keys are scoped by payroll period.
const (
	opDailyHours   = "daily_hours"
	opHolidayDates = "holiday_dates"
	opWeeklyHours  = "weekly_hours"
	opHolidayHours = "holiday_hours"
	opWorkingDays  = "working_days"
	opCompensation = "compensation_settings"
	opPoolSettings = "pool_settings"
)

// Engine derives the monthly pay figure per staff member from raw
// punches, the holiday calendar, pay contracts and the pooled service
// charge. It is the only entry point external callers invoke.
type Engine struct {
	timeEntries  timeclock.Store
	staffRepo    staff.Repository
	holidayRepo  holidaydomain.Repository
	compResolver *CompensationResolver
	settings     *settings.Service

	daily       *DailyAggregator
	weekly      *WeeklyAggregator
	holidayAgg  *HolidayAggregator
	workingDays *WorkingDaysCounter

	cache        *cache.Cache
	sf           singleflight.Group
	retry        *retry.Policy
	loc          *time.Location
	aggregateTTL time.Duration
	settingsTTL  time.Duration
}

func NewEngine(
	timeEntries timeclock.Store,
	staffRepo staff.Repository,
	compensationRepo staff.CompensationRepository,
	holidayRepo holidaydomain.Repository,
	settingsSvc *settings.Service,
	computationCache *cache.Cache,
	retryPolicy *retry.Policy,
	loc *time.Location,
	aggregateTTL time.Duration,
	settingsTTL time.Duration,
) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		timeEntries:  timeEntries,
		staffRepo:    staffRepo,
		holidayRepo:  holidayRepo,
		compResolver: NewCompensationResolver(compensationRepo),
		settings:     settingsSvc,
		daily:        NewDailyAggregator(loc),
		weekly:       NewWeeklyAggregator(),
		holidayAgg:   NewHolidayAggregator(),
		workingDays:  NewWorkingDaysCounter(),
		cache:        computationCache,
		retry:        retryPolicy,
		loc:          loc,
		aggregateTTL: aggregateTTL,
		settingsTTL:  settingsTTL,
	}
}

var _ payroll.Service = (*Engine)(nil)

// cachedFetch memoizes fn under (operation, period) with ttl. Concurrent
// callers for the same key share a single computation; the dependents of
// the daily aggregation all funnel through here so raw punches are
// fetched once per month, not once per dependent.
func cachedFetch[T any](e *Engine, ctx context.Context, operation string, period payroll.Period, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if e.cache == nil {
		return fn(ctx)
	}

	key := cache.Key(operation, period.String())
	if v, ok := e.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err, _ := e.sf.Do(key, func() (any, error) {
		return cache.GetOrCompute(e.cache, operation, period.String(), ttl, func() (T, error) {
			return fn(ctx)
		})
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func (e *Engine) dailyHours(ctx context.Context, period payroll.Period) ([]timeclock.DailyHours, error) {
	return cachedFetch(e, ctx, opDailyHours, period, e.aggregateTTL, func(ctx context.Context) ([]timeclock.DailyHours, error) {
		var entries []timeclock.TimeEntry
		err := e.retry.Do(ctx, opDailyHours, func(ctx context.Context) error {
			var err error
			entries, err = e.timeEntries.ListRange(ctx, period.Start(e.loc), period.End(e.loc))
			return err
		})
		if err != nil {
			return nil, payroll.NewStorageFailure("time entries", err)
		}
		return e.daily.Aggregate(entries), nil
	})
}

func (e *Engine) holidayDates(ctx context.Context, period payroll.Period) (map[string]bool, error) {
	return cachedFetch(e, ctx, opHolidayDates, period, e.settingsTTL, func(ctx context.Context) (map[string]bool, error) {
		var holidays []holidaydomain.PublicHoliday
		err := e.retry.Do(ctx, opHolidayDates, func(ctx context.Context) error {
			var err error
			holidays, err = e.holidayRepo.ListActiveRange(ctx, period.Start(e.loc), period.End(e.loc))
			return err
		})
		if err != nil {
			return nil, payroll.NewStorageFailure("public holidays", err)
		}
		dates := make(map[string]bool, len(holidays))
		for _, h := range holidays {
			dates[h.Date.In(e.loc).Format("2006-01-02")] = true
		}
		return dates, nil
	})
}

func (e *Engine) weeklyHours(ctx context.Context, period payroll.Period) ([]payroll.WeeklyHours, error) {
	return cachedFetch(e, ctx, opWeeklyHours, period, e.aggregateTTL, func(ctx context.Context) ([]payroll.WeeklyHours, error) {
		days, err := e.dailyHours(ctx, period)
		if err != nil {
			return nil, err
		}
		dates, err := e.holidayDates(ctx, period)
		if err != nil {
			return nil, err
		}
		return e.weekly.Aggregate(days, dates), nil
	})
}

func (e *Engine) holidayHours(ctx context.Context, period payroll.Period) (map[string]float64, error) {
	return cachedFetch(e, ctx, opHolidayHours, period, e.aggregateTTL, func(ctx context.Context) (map[string]float64, error) {
		dates, err := e.holidayDates(ctx, period)
		if err != nil {
			return nil, err
		}
		if len(dates) == 0 {
			return map[string]float64{}, nil
		}
		days, err := e.dailyHours(ctx, period)
		if err != nil {
			return nil, err
		}
		return e.holidayAgg.Aggregate(days, dates), nil
	})
}

func (e *Engine) workingDayCounts(ctx context.Context, period payroll.Period) (map[string]int, error) {
	return cachedFetch(e, ctx, opWorkingDays, period, e.aggregateTTL, func(ctx context.Context) (map[string]int, error) {
		days, err := e.dailyHours(ctx, period)
		if err != nil {
			return nil, err
		}
		return e.workingDays.Count(days), nil
	})
}

func (e *Engine) compensations(ctx context.Context, period payroll.Period) (map[string]staff.Compensation, error) {
	return cachedFetch(e, ctx, opCompensation, period, e.settingsTTL, func(ctx context.Context) (map[string]staff.Compensation, error) {
		var comps map[string]staff.Compensation
		err := e.retry.Do(ctx, opCompensation, func(ctx context.Context) error {
			var err error
			comps, err = e.compResolver.Resolve(ctx, period.LastDay(e.loc))
			return err
		})
		if err != nil {
			return nil, payroll.NewStorageFailure("compensation settings", err)
		}
		return comps, nil
	})
}

func (e *Engine) poolSettings(ctx context.Context, period payroll.Period) (payroll.PoolSettings, error) {
	return cachedFetch(e, ctx, opPoolSettings, period, e.settingsTTL, func(ctx context.Context) (payroll.PoolSettings, error) {
		var pool payroll.PoolSettings
		err := e.retry.Do(ctx, opPoolSettings, func(ctx context.Context) error {
			allowance, err := e.settings.DailyAllowance(ctx)
			if err != nil {
				return err
			}
			charge, err := e.settings.ServiceChargePool(ctx, period.String())
			if err != nil {
				return err
			}
			pool = payroll.PoolSettings{DailyAllowance: allowance, ServiceChargePool: charge}
			return nil
		})
		if err != nil {
			return payroll.PoolSettings{}, payroll.NewStorageFailure("pool settings", err)
		}
		return pool, nil
	})
}

// Calculate computes the month's pay figures for every active staff
// member. The independent fetches are dispatched concurrently so latency
// is bounded by the slowest one; all must complete before the arithmetic
// runs. Any validation or unrecoverable fetch failure aborts the whole
// computation; a partially computed or zero-filled result is never
// returned.
func (e *Engine) Calculate(ctx context.Context, period payroll.Period) ([]payroll.CalculationResult, error) {
	var (
		weekly   []payroll.WeeklyHours
		holHours map[string]float64
		workDays map[string]int
		comps    map[string]staff.Compensation
		pool     payroll.PoolSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		weekly, err = e.weeklyHours(gctx, period)
		return err
	})
	g.Go(func() error {
		var err error
		holHours, err = e.holidayHours(gctx, period)
		return err
	})
	g.Go(func() error {
		var err error
		workDays, err = e.workingDayCounts(gctx, period)
		return err
	})
	g.Go(func() error {
		var err error
		comps, err = e.compensations(gctx, period)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = e.poolSettings(gctx, period)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var roster []staff.Staff
	err := e.retry.Do(ctx, "staff_roster", func(ctx context.Context) error {
		var err error
		roster, err = e.staffRepo.ListActive(ctx)
		return err
	})
	if err != nil {
		return nil, payroll.NewStorageFailure("staff roster", err)
	}

	// Every active staff member must have a pay contract. Anything less
	// is a data error the operator has to fix, not a zero-pay default.
	var missing []string
	for _, s := range roster {
		if _, ok := comps[s.ID]; !ok {
			missing = append(missing, s.Name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, payroll.NewMissingCompensation(period, missing)
	}

	// Sum the weekly aggregates into per-staff month totals.
	type monthHours struct {
		total    float64
		overtime float64
	}
	hoursByStaff := make(map[string]monthHours)
	for _, w := range weekly {
		h := hoursByStaff[w.StaffID]
		h.total += w.TotalHours
		h.overtime += w.OvertimeHours
		hoursByStaff[w.StaffID] = h
	}

	serviceChargeShare := e.serviceChargeShare(roster, comps, pool.ServiceChargePool)

	results := make([]payroll.CalculationResult, 0, len(roster))
	for _, s := range roster {
		comp := comps[s.ID]
		hours := hoursByStaff[s.ID]

		var basePay, allowance decimal.Decimal
		switch comp.Type {
		case staff.CompensationSalary:
			// Fixed salary regardless of hours; the flat allowance
			// rewards each qualifying working day.
			basePay = comp.BaseSalary
			allowance = pool.DailyAllowance.Mul(decimal.NewFromInt(int64(workDays[s.ID]))).Round(2)
		default:
			basePay = decimal.NewFromFloat(hours.total).Mul(comp.HourlyRate).Round(2)
			allowance = decimal.Zero
		}

		overtimePay := decimal.NewFromFloat(hours.overtime).Mul(comp.OvertimeRate).Round(2)
		holidayPay := decimal.NewFromFloat(holHours[s.ID]).Mul(comp.HolidayRate).Round(2)

		serviceCharge := decimal.Zero
		if comp.ServiceChargeEligible {
			serviceCharge = serviceChargeShare
		}

		results = append(results, payroll.CalculationResult{
			StaffID:          s.ID,
			StaffName:        s.Name,
			CompensationType: comp.Type,
			WorkingDays:      workDays[s.ID],
			TotalHours:       hours.total,
			OvertimeHours:    hours.overtime,
			HolidayHours:     holHours[s.ID],
			BasePay:          basePay,
			DailyAllowance:   allowance,
			OvertimePay:      overtimePay,
			HolidayPay:       holidayPay,
			ServiceCharge:    serviceCharge,
			TotalPayout:      basePay.Add(allowance).Add(overtimePay).Add(holidayPay).Add(serviceCharge),
		})
	}

	return results, nil
}

// serviceChargeShare splits the month's pool evenly among eligible staff.
// Nobody eligible means nobody gets a share, pool or not.
func (e *Engine) serviceChargeShare(roster []staff.Staff, comps map[string]staff.Compensation, total decimal.Decimal) decimal.Decimal {
	eligible := 0
	for _, s := range roster {
		if comps[s.ID].ServiceChargeEligible {
			eligible++
		}
	}
	if eligible == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(eligible))).Round(2)
}
