package database

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/note"
)

type noteRow struct {
	ID        int       `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func (row noteRow) toNote() note.Note {
	return note.Note{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
	}
}

type noteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) note.Repository {
	return &noteRepository{db: db}
}

func (repo *noteRepository) CreateNote(n note.Note) (note.Note, error) {
	const q = `INSERT INTO note (title, body, created_at) VALUES ($1, $2, $3) RETURNING id`

	if err := repo.db.QueryRow(q, n.Title, n.Body, n.CreatedAt).Scan(&n.ID); err != nil {
		return note.Note{}, errors.Wrap(err, "inserting note")
	}
	return n, nil
}

func (repo *noteRepository) QueryAllNotes() ([]note.Note, error) {
	const q = `SELECT * FROM note ORDER BY created_at DESC, id DESC`

	var rows []noteRow
	if err := repo.db.Select(&rows, q); err != nil {
		return nil, errors.Wrap(err, "querying notes")
	}
	notes := make([]note.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.toNote())
	}
	return notes, nil
}

func (repo *noteRepository) GetNoteByID(id int) (note.Note, error) {
	const q = `SELECT * FROM note WHERE id = $1`

	var row noteRow
	if err := repo.db.Get(&row, q, id); err != nil {
		if err == sql.ErrNoRows {
			return note.Note{}, note.ErrNotFound
		}
		return note.Note{}, errors.Wrap(err, "getting note")
	}
	return row.toNote(), nil
}
