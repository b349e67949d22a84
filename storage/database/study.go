package database

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/study"
)

type studyRow struct {
	ID              int       `db:"id"`
	Subject         string    `db:"subject"`
	DurationMinutes int       `db:"duration_minutes"`
	Date            time.Time `db:"date"`
}

type studyRepository struct {
	db *sqlx.DB
}

func NewStudyRepository(db *sqlx.DB) study.Repository {
	return &studyRepository{db: db}
}

func (repo *studyRepository) CreateSession(s study.Session) (study.Session, error) {
	const q = `INSERT INTO study_session (subject, duration_minutes, date)
		VALUES ($1, $2, $3) RETURNING id`

	if err := repo.db.QueryRow(q, s.Subject, s.DurationMinutes, s.Date).Scan(&s.ID); err != nil {
		return study.Session{}, errors.Wrap(err, "inserting study session")
	}
	return s, nil
}

func (repo *studyRepository) QueryAllSessions() ([]study.Session, error) {
	const q = `SELECT * FROM study_session ORDER BY date DESC, id DESC`

	var rows []studyRow
	if err := repo.db.Select(&rows, q); err != nil {
		return nil, errors.Wrap(err, "querying study sessions")
	}
	sessions := make([]study.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, study.Session{
			ID:              row.ID,
			Subject:         row.Subject,
			DurationMinutes: row.DurationMinutes,
			Date:            row.Date,
		})
	}
	return sessions, nil
}
