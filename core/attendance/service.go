package attendance

import (
	"errors"
	"time"

	"github.com/aliHasanov22/holb-st-m/core"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("attendance record not found")

	errWeekend      = errors.New("Weekends do not count towards mandatory hours!")
	errDuplicateDay = errors.New("attendance for this date is already logged")
)

type (
	Repository interface {
		CreateRecord(rec Record) (Record, error)
		RecordExistsForDate(day time.Time) (bool, error)
		// QueryRecordsFrom returns records dated on or after `from`,
		// newest date first (entry time breaking ties, latest first).
		QueryRecordsFrom(from time.Time) ([]Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log validates and persists one attendance record. Weekend dates and
// second records for an already-logged day are rejected before any hours
// are computed.
func (svc *Service) Log(nr NewRecord) (Record, error) {
	day := core.StartOfDay(NowFunc().UTC())
	if nr.Date != "" {
		parsed, err := time.Parse(core.DateLayout, nr.Date)
		if err != nil {
			return Record{}, core.NewValidationError(err, core.FieldError{Field: "date", Error: "must be a date formatted as YYYY-MM-DD"})
		}
		day = parsed
	}

	// 0=Mon .. 4=Fri are the only weekdays that count
	if core.MondayIndex(day) > 4 {
		return Record{}, core.NewValidationError(errWeekend, core.FieldError{Field: "date", Error: errWeekend.Error()})
	}

	exists, err := svc.repo.RecordExistsForDate(day)
	if err != nil {
		return Record{}, err
	}
	if exists {
		return Record{}, core.NewValidationError(errDuplicateDay, core.FieldError{Field: "date", Error: errDuplicateDay.Error()})
	}

	entry, err := ParseClockTime(nr.Entry)
	if err != nil {
		return Record{}, err
	}
	exit, err := ParseClockTime(nr.Exit)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Date:       day,
		Entry:      entry,
		Exit:       exit,
		ValidHours: ValidHours(entry, exit),
		CreatedAt:  NowFunc().UTC(),
	}
	return svc.repo.CreateRecord(rec)
}

// CurrentWeek returns this week's logs (Monday onward), newest first,
// along with the total valid hours.
func (svc *Service) CurrentWeek() (WeekLog, error) {
	weekStart := core.WeekStart(NowFunc().UTC())
	logs, err := svc.repo.QueryRecordsFrom(weekStart)
	if err != nil {
		return WeekLog{}, err
	}
	if logs == nil {
		logs = []Record{} // marshal as [], not null
	}

	var total float64
	for _, rec := range logs {
		total += rec.ValidHours
	}
	return WeekLog{Logs: logs, TotalHours: Round2(total)}, nil
}
