package study

import (
	"encoding/json"
	"time"

	"github.com/aliHasanov22/holb-st-m/core"
)

// Session is one logged study session.
type Session struct {
	ID              int
	Subject         string
	DurationMinutes int
	Date            time.Time // UTC
}

func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Subject  string `json:"subject"`
		Duration int    `json:"duration"`
	}{
		Subject:  s.Subject,
		Duration: s.DurationMinutes,
	})
}

// NewSession contains information needed to log a study session.
type NewSession struct {
	Subject  string `json:"subject" validate:"required,max=50"`
	Duration int    `json:"duration" validate:"required,min=1"`
}

func (ns *NewSession) Validate() error {
	ns.Subject = core.CleanString(ns.Subject)
	return core.Validate.Struct(ns)
}
