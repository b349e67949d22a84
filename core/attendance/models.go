package attendance

import (
	"encoding/json"
	"time"

	"github.com/aliHasanov22/holb-st-m/core"
)

// Record is one attendance log: a single entry/exit pair for one calendar
// day. Records are append-only; ValidHours is always recomputed from the
// entry and exit times at write time, never supplied by the caller.
type Record struct {
	ID         int
	Date       time.Time // calendar day, midnight UTC
	Entry      ClockTime
	Exit       ClockTime
	ValidHours float64
	CreatedAt  time.Time // UTC
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  string  `json:"date"`
		Entry string  `json:"entry"`
		Exit  string  `json:"exit"`
		Hours float64 `json:"hours"`
	}{
		Date:  r.Date.Format(core.DateLayout),
		Entry: r.Entry.String(),
		Exit:  r.Exit.String(),
		Hours: r.ValidHours,
	})
}

// NewRecord contains information needed to log attendance for a day.
type NewRecord struct {
	Date  string `json:"date" validate:"omitempty,dateonly"`
	Entry string `json:"entry" validate:"required,hhmm"`
	Exit  string `json:"exit" validate:"required,hhmm"`
}

func (nr *NewRecord) Validate() error {
	nr.Date = core.CleanString(nr.Date)
	nr.Entry = core.CleanString(nr.Entry)
	nr.Exit = core.CleanString(nr.Exit)
	return core.Validate.Struct(nr)
}

// WeekLog is the current week's attendance, newest first, with the total
// of valid hours.
type WeekLog struct {
	Logs       []Record `json:"logs"`
	TotalHours float64  `json:"total_hours"`
}
