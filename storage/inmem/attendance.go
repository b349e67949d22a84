package inmem

import (
	"sort"
	"time"

	"github.com/aliHasanov22/holb-st-m/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) CreateRecord(rec attendance.Record) (attendance.Record, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.attendanceSeq++
	rec.ID = repo.db.attendanceSeq
	repo.db.attendances[rec.ID] = &rec
	return rec, nil
}

func (repo *attendanceRepository) RecordExistsForDate(day time.Time) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, rec := range repo.db.attendances {
		if rec.Date.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (repo *attendanceRepository) QueryRecordsFrom(from time.Time) ([]attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := make([]attendance.Record, 0)
	for _, rec := range repo.db.attendances {
		if !rec.Date.Before(from) {
			records = append(records, *rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date.Equal(records[j].Date) {
			return records[j].Entry.Before(records[i].Entry)
		}
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}
