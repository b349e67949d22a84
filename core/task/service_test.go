package task_test

import (
	"testing"
	"time"

	"github.com/aliHasanov22/holb-st-m/core/task"
	"github.com/aliHasanov22/holb-st-m/storage/inmem"
)

func mockNow(t *testing.T, now time.Time) {
	t.Helper()
	task.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { task.NowFunc = time.Now })
}

func newSvc() *task.Service {
	db := inmem.Open()
	return task.NewService(inmem.NewTaskRepository(db), inmem.NewSummaryRepository(db))
}

func TestCreate(t *testing.T) {
	svc := newSvc()

	created, err := svc.Create(task.NewTask{Title: "revise haversine proof"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created.Priority != task.PriorityMedium {
		t.Errorf("Priority = %q, want default %q", created.Priority, task.PriorityMedium)
	}
	if created.Status != task.StatusPending {
		t.Errorf("Status = %q, want %q", created.Status, task.StatusPending)
	}
	if created.ID == 0 {
		t.Error("ID not assigned")
	}
}

func TestQueryAllNewestFirst(t *testing.T) {
	svc := newSvc()

	mockNow(t, time.Date(2021, 3, 8, 9, 0, 0, 0, time.UTC))
	if _, err := svc.Create(task.NewTask{Title: "old"}); err != nil {
		t.Fatal(err)
	}
	mockNow(t, time.Date(2021, 3, 9, 9, 0, 0, 0, time.UTC))
	if _, err := svc.Create(task.NewTask{Title: "new"}); err != nil {
		t.Fatal(err)
	}

	all, err := svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(all) != 2 || all[0].Title != "new" {
		t.Errorf("QueryAll() = %+v, want newest first", all)
	}
}

func TestToggle(t *testing.T) {
	svc := newSvc()

	created, err := svc.Create(task.NewTask{Title: "flashcards"})
	if err != nil {
		t.Fatal(err)
	}

	toggled, err := svc.Toggle(created.ID)
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if toggled.Status != task.StatusCompleted {
		t.Errorf("Status = %q, want %q", toggled.Status, task.StatusCompleted)
	}

	toggled, err = svc.Toggle(created.ID)
	if err != nil {
		t.Fatalf("Toggle() back failed: %v", err)
	}
	if toggled.Status != task.StatusPending {
		t.Errorf("Status = %q, want %q", toggled.Status, task.StatusPending)
	}
}

func TestToggleNotFound(t *testing.T) {
	svc := newSvc()
	if _, err := svc.Toggle(404); err != task.ErrNotFound {
		t.Errorf("Toggle(404) err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newSvc()

	created, err := svc.Create(task.NewTask{Title: "gone soon"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := svc.GetByID(created.ID); err != task.ErrNotFound {
		t.Errorf("GetByID after delete err = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	svc := newSvc()

	for _, title := range []string{"a", "b", "c"} {
		if _, err := svc.Create(task.NewTask{Title: title}); err != nil {
			t.Fatal(err)
		}
	}
	first, err := svc.QueryAll()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle(first[0].ID); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats[task.StatusPending] != 2 || stats[task.StatusCompleted] != 1 {
		t.Errorf("Stats() = %v, want Pending:2 Completed:1", stats)
	}
}
