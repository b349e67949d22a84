package attendance_test

import (
	"testing"
	"time"

	"github.com/aliHasanov22/holb-st-m/core/attendance"
	"github.com/aliHasanov22/holb-st-m/storage/inmem"
)

func mockNow(t *testing.T, now time.Time) {
	t.Helper()
	attendance.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { attendance.NowFunc = time.Now })
}

func newSvc() *attendance.Service {
	db := inmem.Open()
	return attendance.NewService(inmem.NewAttendanceRepository(db))
}

func TestLog(t *testing.T) {
	// Wednesday
	mockNow(t, time.Date(2021, 3, 10, 14, 0, 0, 0, time.UTC))
	svc := newSvc()

	rec, err := svc.Log(attendance.NewRecord{Date: "2021-03-10", Entry: "09:00", Exit: "17:00"})
	if err != nil {
		t.Fatalf("Log() failed: %v", err)
	}
	if rec.ValidHours != 8.00 {
		t.Errorf("ValidHours = %v, want 8.00", rec.ValidHours)
	}
	if got := rec.Date.Format("2006-01-02"); got != "2021-03-10" {
		t.Errorf("Date = %s, want 2021-03-10", got)
	}
}

func TestLogDefaultsToToday(t *testing.T) {
	mockNow(t, time.Date(2021, 3, 10, 14, 0, 0, 0, time.UTC))
	svc := newSvc()

	rec, err := svc.Log(attendance.NewRecord{Entry: "09:00", Exit: "17:00"})
	if err != nil {
		t.Fatalf("Log() failed: %v", err)
	}
	if got := rec.Date.Format("2006-01-02"); got != "2021-03-10" {
		t.Errorf("Date = %s, want 2021-03-10", got)
	}
}

func TestLogRejectsWeekend(t *testing.T) {
	mockNow(t, time.Date(2021, 3, 10, 14, 0, 0, 0, time.UTC))
	svc := newSvc()

	// 2021-03-13 is a Saturday; entry/exit values are irrelevant
	_, err := svc.Log(attendance.NewRecord{Date: "2021-03-13", Entry: "09:00", Exit: "17:00"})
	if err == nil {
		t.Fatal("Log() on a Saturday: expected error")
	}

	// Sunday
	if _, err := svc.Log(attendance.NewRecord{Date: "2021-03-14", Entry: "09:00", Exit: "17:00"}); err == nil {
		t.Fatal("Log() on a Sunday: expected error")
	}
}

func TestLogRejectsDuplicateDay(t *testing.T) {
	mockNow(t, time.Date(2021, 3, 10, 14, 0, 0, 0, time.UTC))
	svc := newSvc()

	if _, err := svc.Log(attendance.NewRecord{Date: "2021-03-10", Entry: "09:00", Exit: "12:00"}); err != nil {
		t.Fatalf("first Log() failed: %v", err)
	}
	if _, err := svc.Log(attendance.NewRecord{Date: "2021-03-10", Entry: "13:00", Exit: "17:00"}); err == nil {
		t.Fatal("second Log() for same date: expected error")
	}
}

func TestCurrentWeek(t *testing.T) {
	// Friday 2021-03-12; week starts Monday 2021-03-08
	mockNow(t, time.Date(2021, 3, 12, 18, 30, 0, 0, time.UTC))
	svc := newSvc()

	days := []string{"2021-03-08", "2021-03-09", "2021-03-12"}
	for _, d := range days {
		if _, err := svc.Log(attendance.NewRecord{Date: d, Entry: "09:00", Exit: "17:00"}); err != nil {
			t.Fatalf("Log(%s) failed: %v", d, err)
		}
	}

	week, err := svc.CurrentWeek()
	if err != nil {
		t.Fatalf("CurrentWeek() failed: %v", err)
	}
	if len(week.Logs) != 3 {
		t.Fatalf("len(Logs) = %d, want 3", len(week.Logs))
	}
	if got := week.Logs[0].Date.Format("2006-01-02"); got != "2021-03-12" {
		t.Errorf("Logs[0].Date = %s, want newest first (2021-03-12)", got)
	}
	if week.TotalHours != 24.00 {
		t.Errorf("TotalHours = %v, want 24.00", week.TotalHours)
	}
}

func TestCurrentWeekEmpty(t *testing.T) {
	mockNow(t, time.Date(2021, 3, 12, 18, 30, 0, 0, time.UTC))
	svc := newSvc()

	week, err := svc.CurrentWeek()
	if err != nil {
		t.Fatalf("CurrentWeek() failed: %v", err)
	}
	if week.Logs == nil || len(week.Logs) != 0 {
		t.Errorf("Logs = %v, want empty non-nil slice", week.Logs)
	}
	if week.TotalHours != 0 {
		t.Errorf("TotalHours = %v, want 0", week.TotalHours)
	}
}
