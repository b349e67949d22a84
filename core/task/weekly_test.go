package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliHasanov22/holb-st-m/core/task"
)

// week anchors; 2021-03-08 and 2021-03-15 are Mondays
var (
	monday1 = time.Date(2021, 3, 8, 0, 0, 0, 0, time.UTC)
	monday2 = time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)
	monday3 = time.Date(2021, 3, 22, 0, 0, 0, 0, time.UTC)
	monday4 = time.Date(2021, 3, 29, 0, 0, 0, 0, time.UTC)
	monday5 = time.Date(2021, 4, 5, 0, 0, 0, 0, time.UTC)
)

func createAt(t *testing.T, svc *task.Service, title string, at time.Time, completed bool) {
	t.Helper()
	mockNow(t, at)
	created, err := svc.Create(task.NewTask{Title: title})
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", title, err)
	}
	if completed {
		if _, err := svc.Toggle(created.ID); err != nil {
			t.Fatalf("Toggle(%s) failed: %v", title, err)
		}
	}
}

func weekStarts(summaries []task.WeeklySummary) []string {
	starts := make([]string, 0, len(summaries))
	for _, ws := range summaries {
		starts = append(starts, ws.WeekStart.Format("2006-01-02"))
	}
	return starts
}

func TestWeeklySummariesBootstrap(t *testing.T) {
	svc := newSvc()
	createAt(t, svc, "last week", monday1.AddDate(0, 0, 2), true)

	// current week is monday2's; with no rows yet, exactly one historical
	// row is bootstrapped for monday1's week; the current week stays live
	mockNow(t, monday2.AddDate(0, 0, 3))
	summaries, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatalf("WeeklySummaries() failed: %v", err)
	}

	assert.Equal(t, []string{"2021-03-08", "2021-03-15"}, weekStarts(summaries))
	assert.Equal(t, 1, summaries[0].TotalTasks)
	assert.Equal(t, 1, summaries[0].CompletedTasks)
	assert.Equal(t, 0, summaries[1].TotalTasks)
}

func TestWeeklySummariesIdempotent(t *testing.T) {
	svc := newSvc()
	createAt(t, svc, "w1", monday1.AddDate(0, 0, 1), false)

	mockNow(t, monday3.AddDate(0, 0, 1))
	first, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatalf("first WeeklySummaries() failed: %v", err)
	}
	second, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatalf("second WeeklySummaries() failed: %v", err)
	}

	assert.Equal(t, first, second)
	assert.Equal(t, weekStarts(first), weekStarts(second))
}

func TestWeeklySummariesBackfillsGap(t *testing.T) {
	svc := newSvc()
	createAt(t, svc, "w1", monday1.AddDate(0, 0, 1), false)

	// first sync persists monday1's week only (bootstrap)
	mockNow(t, monday2.AddDate(0, 0, 1))
	if err := svc.EnsureSummaries(); err != nil {
		t.Fatalf("EnsureSummaries() failed: %v", err)
	}

	// three full weeks elapse without a sync
	createAt(t, svc, "w3 task", monday3.AddDate(0, 0, 4), true)
	mockNow(t, monday5.AddDate(0, 0, 2))
	summaries, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatalf("WeeklySummaries() failed: %v", err)
	}

	// exactly 3 new rows, ascending, current week (monday5) unpersisted
	assert.Equal(t,
		[]string{"2021-03-08", "2021-03-15", "2021-03-22", "2021-03-29", "2021-04-05"},
		weekStarts(summaries))

	persisted, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, weekStarts(summaries), weekStarts(persisted))

	w3 := summaries[2]
	assert.Equal(t, 1, w3.TotalTasks)
	assert.Equal(t, 1, w3.CompletedTasks)
}

func TestTaskCountedInExactlyOneWeek(t *testing.T) {
	svc := newSvc()

	// created on a Wednesday; belongs to monday2's week only
	createAt(t, svc, "wednesday task", monday2.AddDate(0, 0, 2), false)

	mockNow(t, monday4.AddDate(0, 0, 1))
	summaries, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatalf("WeeklySummaries() failed: %v", err)
	}

	var total int
	for _, ws := range summaries {
		if ws.TotalTasks > 0 {
			total += ws.TotalTasks
			assert.Equal(t, "2021-03-15", ws.WeekStart.Format("2006-01-02"))
		}
	}
	assert.Equal(t, 1, total)
}

func TestWeeklySummariesCurrentWeekStaysLive(t *testing.T) {
	svc := newSvc()
	mockNow(t, monday2.AddDate(0, 0, 1))

	before, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatal(err)
	}
	current := before[len(before)-1]
	assert.Equal(t, 0, current.TotalTasks)

	createAt(t, svc, "added midweek", monday2.AddDate(0, 0, 2), false)
	mockNow(t, monday2.AddDate(0, 0, 3))

	after, err := svc.WeeklySummaries()
	if err != nil {
		t.Fatal(err)
	}
	current = after[len(after)-1]
	assert.Equal(t, "2021-03-15", current.WeekStart.Format("2006-01-02"))
	assert.Equal(t, 1, current.TotalTasks)
}
