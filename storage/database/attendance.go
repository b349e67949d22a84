package database

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core"
	"github.com/aliHasanov22/holb-st-m/core/attendance"
)

type attendanceRow struct {
	ID         int       `db:"id"`
	Date       time.Time `db:"date"`
	EntryTime  string    `db:"entry_time"`
	ExitTime   string    `db:"exit_time"`
	ValidHours float64   `db:"valid_hours"`
	CreatedAt  time.Time `db:"created_at"`
}

func (row attendanceRow) toRecord() (attendance.Record, error) {
	entry, err := attendance.ParseClockTime(row.EntryTime)
	if err != nil {
		return attendance.Record{}, errors.Wrapf(err, "corrupt entry_time for attendance %d", row.ID)
	}
	exit, err := attendance.ParseClockTime(row.ExitTime)
	if err != nil {
		return attendance.Record{}, errors.Wrapf(err, "corrupt exit_time for attendance %d", row.ID)
	}
	return attendance.Record{
		ID:         row.ID,
		Date:       core.StartOfDay(row.Date.UTC()),
		Entry:      entry,
		Exit:       exit,
		ValidHours: row.ValidHours,
		CreatedAt:  row.CreatedAt,
	}, nil
}

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) CreateRecord(rec attendance.Record) (attendance.Record, error) {
	const q = `INSERT INTO attendance (date, entry_time, exit_time, valid_hours, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := repo.db.QueryRow(q, rec.Date, rec.Entry.String(), rec.Exit.String(), rec.ValidHours, rec.CreatedAt).Scan(&rec.ID)
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "inserting attendance record")
	}
	return rec, nil
}

func (repo *attendanceRepository) RecordExistsForDate(day time.Time) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM attendance WHERE date = $1)`

	var exists bool
	if err := repo.db.Get(&exists, q, day); err != nil {
		return false, errors.Wrap(err, "checking attendance date")
	}
	return exists, nil
}

func (repo *attendanceRepository) QueryRecordsFrom(from time.Time) ([]attendance.Record, error) {
	const q = `SELECT * FROM attendance WHERE date >= $1 ORDER BY date DESC, entry_time DESC`

	var rows []attendanceRow
	if err := repo.db.Select(&rows, q, from); err != nil {
		return nil, errors.Wrap(err, "querying attendance records")
	}
	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
