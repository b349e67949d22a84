package database

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/task"
)

// pq error code for unique_violation
const uniqueViolation = "23505"

type summaryRow struct {
	ID             int       `db:"id"`
	WeekStart      time.Time `db:"week_start"`
	TotalTasks     int       `db:"total_tasks"`
	CompletedTasks int       `db:"completed_tasks"`
	CreatedAt      time.Time `db:"created_at"`
}

func (row summaryRow) toSummary() task.WeeklySummary {
	return task.WeeklySummary{
		ID:             row.ID,
		WeekStart:      row.WeekStart.UTC(),
		TotalTasks:     row.TotalTasks,
		CompletedTasks: row.CompletedTasks,
		CreatedAt:      row.CreatedAt,
	}
}

type summaryRepository struct {
	db *sqlx.DB
}

func NewSummaryRepository(db *sqlx.DB) task.SummaryRepository {
	return &summaryRepository{db: db}
}

// CreateSummary inserts one closed week's counts. The UNIQUE constraint on
// week_start turns a concurrent double-insert into task.ErrSummaryExists,
// which callers treat as "another caller already inserted this week".
func (repo *summaryRepository) CreateSummary(ws task.WeeklySummary) (task.WeeklySummary, error) {
	const q = `INSERT INTO weekly_task_summary (week_start, total_tasks, completed_tasks, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`

	err := repo.db.QueryRow(q, ws.WeekStart, ws.TotalTasks, ws.CompletedTasks, ws.CreatedAt).Scan(&ws.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return task.WeeklySummary{}, task.ErrSummaryExists
		}
		return task.WeeklySummary{}, errors.Wrap(err, "inserting weekly summary")
	}
	return ws, nil
}

func (repo *summaryRepository) LatestSummary() (task.WeeklySummary, error) {
	const q = `SELECT * FROM weekly_task_summary ORDER BY week_start DESC LIMIT 1`

	var row summaryRow
	if err := repo.db.Get(&row, q); err != nil {
		if err == sql.ErrNoRows {
			return task.WeeklySummary{}, task.ErrNoSummaries
		}
		return task.WeeklySummary{}, errors.Wrap(err, "getting latest weekly summary")
	}
	return row.toSummary(), nil
}

func (repo *summaryRepository) QueryAllSummaries() ([]task.WeeklySummary, error) {
	const q = `SELECT * FROM weekly_task_summary ORDER BY week_start ASC`

	var rows []summaryRow
	if err := repo.db.Select(&rows, q); err != nil {
		return nil, errors.Wrap(err, "querying weekly summaries")
	}
	summaries := make([]task.WeeklySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}
