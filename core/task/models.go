package task

import (
	"time"

	"github.com/aliHasanov22/holb-st-m/core"
)

// Statuses
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Priorities
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Task struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	StartDate string    `json:"start_date"`
	DueDate   string    `json:"due_date"`
	CreatedAt time.Time `json:"-"` // UTC
}

func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title     string `json:"title" validate:"required,max=100"`
	Priority  string `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	StartDate string `json:"start_date" validate:"omitempty,dateonly"`
	DueDate   string `json:"due_date" validate:"omitempty,dateonly"`
}

func (nt *NewTask) Validate() error {
	nt.Title = core.CleanString(nt.Title)
	nt.Priority = core.CleanString(nt.Priority)
	nt.StartDate = core.CleanString(nt.StartDate)
	nt.DueDate = core.CleanString(nt.DueDate)
	return core.Validate.Struct(nt)
}
