package inmem

import (
	"sort"

	"github.com/aliHasanov22/holb-st-m/core/task"
)

type summaryRepository struct {
	db *DB
}

func NewSummaryRepository(db *DB) task.SummaryRepository {
	return &summaryRepository{db: db}
}

func (repo *summaryRepository) query() []task.WeeklySummary {
	summaries := make([]task.WeeklySummary, 0, len(repo.db.summaries))
	for _, ws := range repo.db.summaries {
		summaries = append(summaries, *ws)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WeekStart.Before(summaries[j].WeekStart)
	})
	return summaries
}

func (repo *summaryRepository) CreateSummary(ws task.WeeklySummary) (task.WeeklySummary, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, existing := range repo.db.summaries {
		if existing.WeekStart.Equal(ws.WeekStart) {
			return task.WeeklySummary{}, task.ErrSummaryExists
		}
	}
	repo.db.summarySeq++
	ws.ID = repo.db.summarySeq
	repo.db.summaries[ws.ID] = &ws
	return ws, nil
}

func (repo *summaryRepository) LatestSummary() (task.WeeklySummary, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	summaries := repo.query()
	if len(summaries) == 0 {
		return task.WeeklySummary{}, task.ErrNoSummaries
	}
	return summaries[len(summaries)-1], nil
}

func (repo *summaryRepository) QueryAllSummaries() ([]task.WeeklySummary, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}
