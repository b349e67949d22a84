// Package inmem provides mutex-guarded in-memory repositories. They back
// the test suites and the no-database development mode.
package inmem

import (
	"sync"

	"github.com/aliHasanov22/holb-st-m/core/attendance"
	"github.com/aliHasanov22/holb-st-m/core/note"
	"github.com/aliHasanov22/holb-st-m/core/study"
	"github.com/aliHasanov22/holb-st-m/core/task"
	"github.com/aliHasanov22/holb-st-m/core/user"
)

type DB struct {
	mutex sync.RWMutex

	taskSeq       int
	summarySeq    int
	attendanceSeq int
	studySeq      int
	noteSeq       int

	users       map[string]*user.User
	tasks       map[int]*task.Task
	summaries   map[int]*task.WeeklySummary
	attendances map[int]*attendance.Record
	studies     map[int]*study.Session
	notes       map[int]*note.Note
}

func Open() *DB {
	return &DB{
		users:       make(map[string]*user.User),
		tasks:       make(map[int]*task.Task),
		summaries:   make(map[int]*task.WeeklySummary),
		attendances: make(map[int]*attendance.Record),
		studies:     make(map[int]*study.Session),
		notes:       make(map[int]*note.Note),
	}
}
