package database

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/task"
)

type taskRow struct {
	ID        int       `db:"id"`
	Title     string    `db:"title"`
	Priority  string    `db:"priority"`
	Status    string    `db:"status"`
	StartDate string    `db:"start_date"`
	DueDate   string    `db:"due_date"`
	CreatedAt time.Time `db:"created_at"`
}

func (row taskRow) toTask() task.Task {
	return task.Task{
		ID:        row.ID,
		Title:     row.Title,
		Priority:  row.Priority,
		Status:    row.Status,
		StartDate: row.StartDate,
		DueDate:   row.DueDate,
		CreatedAt: row.CreatedAt,
	}
}

type taskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) task.Repository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) CreateTask(t task.Task) (task.Task, error) {
	const q = `INSERT INTO task (title, priority, status, start_date, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	if err := repo.db.QueryRow(q, t.Title, t.Priority, t.Status, t.StartDate, t.DueDate, t.CreatedAt).Scan(&t.ID); err != nil {
		return task.Task{}, errors.Wrap(err, "inserting task")
	}
	return t, nil
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	const q = `SELECT * FROM task ORDER BY created_at DESC, id DESC`

	var rows []taskRow
	if err := repo.db.Select(&rows, q); err != nil {
		return nil, errors.Wrap(err, "querying tasks")
	}
	tasks := make([]task.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toTask())
	}
	return tasks, nil
}

func (repo *taskRepository) GetTaskByID(id int) (task.Task, error) {
	const q = `SELECT * FROM task WHERE id = $1`

	var row taskRow
	if err := repo.db.Get(&row, q, id); err != nil {
		if err == sql.ErrNoRows {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, errors.Wrap(err, "getting task")
	}
	return row.toTask(), nil
}

func (repo *taskRepository) UpdateTaskStatus(id int, status string) (task.Task, error) {
	const q = `UPDATE task SET status = $2 WHERE id = $1 RETURNING *`

	var row taskRow
	if err := repo.db.Get(&row, q, id, status); err != nil {
		if err == sql.ErrNoRows {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, errors.Wrap(err, "updating task status")
	}
	return row.toTask(), nil
}

func (repo *taskRepository) DeleteTask(id int) error {
	const q = `DELETE FROM task WHERE id = $1`

	res, err := repo.db.Exec(q, id)
	if err != nil {
		return errors.Wrap(err, "deleting task")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (repo *taskRepository) CountTasksByStatus() (map[string]int, error) {
	const q = `SELECT status, COUNT(id) AS count FROM task GROUP BY status`

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := repo.db.Select(&rows, q); err != nil {
		return nil, errors.Wrap(err, "counting tasks by status")
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (repo *taskRepository) CountTasksCreatedBetween(from, to time.Time) (total, completed int, err error) {
	const q = `SELECT COUNT(id) AS total,
		COUNT(id) FILTER (WHERE status = $3) AS completed
		FROM task WHERE created_at >= $1 AND created_at < $2`

	var row struct {
		Total     int `db:"total"`
		Completed int `db:"completed"`
	}
	if err := repo.db.Get(&row, q, from, to, task.StatusCompleted); err != nil {
		return 0, 0, errors.Wrap(err, "counting tasks for week")
	}
	return row.Total, row.Completed, nil
}
