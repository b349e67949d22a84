package task

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/aliHasanov22/holb-st-m/core"
)

// ErrSummaryExists is returned by SummaryRepository.CreateSummary when a row
// for the same week already exists. During the back-fill it means another
// caller inserted the week concurrently; it is treated as a no-op, never as
// a failure.
var ErrSummaryExists = errors.New("a summary for this week already exists")

// WeeklySummary is one closed week's task counts. Rows are derived from the
// task log and are never updated or deleted once created; the in-progress
// week is always recomputed live instead of persisted.
type WeeklySummary struct {
	ID             int
	WeekStart      time.Time // always a Monday, midnight UTC
	TotalTasks     int
	CompletedTasks int
	CreatedAt      time.Time // UTC
}

func (ws WeeklySummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		WeekStart      string `json:"week_start"`
		TotalTasks     int    `json:"total_tasks"`
		CompletedTasks int    `json:"completed_tasks"`
	}{
		WeekStart:      ws.WeekStart.Format(core.DateLayout),
		TotalTasks:     ws.TotalTasks,
		CompletedTasks: ws.CompletedTasks,
	})
}

type SummaryRepository interface {
	// CreateSummary persists a row; returns ErrSummaryExists if a row with
	// the same WeekStart is already present.
	CreateSummary(ws WeeklySummary) (WeeklySummary, error)
	// LatestSummary returns the row with the greatest WeekStart, or
	// ErrNoSummaries when the table is empty.
	LatestSummary() (WeeklySummary, error)
	// QueryAllSummaries returns all rows in ascending WeekStart order.
	QueryAllSummaries() ([]WeeklySummary, error)
}

// ErrNoSummaries is returned by SummaryRepository.LatestSummary when no
// summary has been persisted yet.
var ErrNoSummaries = errors.New("no weekly summaries yet")

// computeWeek counts tasks created during the week starting at weekStart.
func (svc *Service) computeWeek(weekStart time.Time) (WeeklySummary, error) {
	total, completed, err := svc.repo.CountTasksCreatedBetween(weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return WeeklySummary{}, err
	}
	return WeeklySummary{
		WeekStart:      weekStart,
		TotalTasks:     total,
		CompletedTasks: completed,
		CreatedAt:      NowFunc().UTC(),
	}, nil
}

func (svc *Service) persistWeek(weekStart time.Time) error {
	ws, err := svc.computeWeek(weekStart)
	if err != nil {
		return err
	}
	if _, err = svc.sums.CreateSummary(ws); err != nil && err != ErrSummaryExists {
		return err
	}
	return nil
}

// EnsureSummaries back-fills one summary row per fully elapsed week since
// the last persisted one, in chronological order, stopping strictly before
// the current (incomplete) week. With no rows yet it bootstraps with the
// single week preceding the current one. Running it again without new weeks
// elapsing changes nothing.
func (svc *Service) EnsureSummaries() error {
	currentWeekStart := core.WeekStart(NowFunc().UTC())

	latest, err := svc.sums.LatestSummary()
	if err == ErrNoSummaries {
		return svc.persistWeek(currentWeekStart.AddDate(0, 0, -7))
	}
	if err != nil {
		return err
	}

	for cursor := latest.WeekStart.AddDate(0, 0, 7); cursor.Before(currentWeekStart); cursor = cursor.AddDate(0, 0, 7) {
		if err := svc.persistWeek(cursor); err != nil {
			return err
		}
	}
	return nil
}

// WeeklySummaries synchronizes the summary ledger and returns all persisted
// rows in ascending week order, with the live current-week figure appended
// unless a persisted row for the current week already exists. That last
// check is defensive: EnsureSummaries never persists the current week.
func (svc *Service) WeeklySummaries() ([]WeeklySummary, error) {
	if err := svc.EnsureSummaries(); err != nil {
		return nil, err
	}

	summaries, err := svc.sums.QueryAllSummaries()
	if err != nil {
		return nil, err
	}

	currentWeekStart := core.WeekStart(NowFunc().UTC())
	if len(summaries) == 0 || !summaries[len(summaries)-1].WeekStart.Equal(currentWeekStart) {
		current, err := svc.computeWeek(currentWeekStart)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, current)
	}
	return summaries, nil
}
