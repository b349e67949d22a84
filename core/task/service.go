package task

import (
	"errors"
	"time"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("task not found")
)

type (
	Repository interface {
		CreateTask(t Task) (Task, error)
		// QueryAllTasks returns all tasks, newest first.
		QueryAllTasks() ([]Task, error)
		GetTaskByID(id int) (Task, error)
		UpdateTaskStatus(id int, status string) (Task, error)
		DeleteTask(id int) error
		// CountTasksByStatus maps each status to the number of tasks holding it.
		CountTasksByStatus() (map[string]int, error)
		// CountTasksCreatedBetween counts tasks with CreatedAt in [from, to),
		// and how many of those are completed.
		CountTasksCreatedBetween(from, to time.Time) (total, completed int, err error)
	}

	Service struct {
		repo Repository
		sums SummaryRepository
	}
)

func NewService(repo Repository, sums SummaryRepository) *Service {
	return &Service{repo: repo, sums: sums}
}

func (svc *Service) Create(nt NewTask) (Task, error) {
	priority := nt.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	t := Task{
		Title:     nt.Title,
		Priority:  priority,
		Status:    StatusPending,
		StartDate: nt.StartDate,
		DueDate:   nt.DueDate,
		CreatedAt: NowFunc().UTC(),
	}
	return svc.repo.CreateTask(t)
}

func (svc *Service) QueryAll() ([]Task, error) {
	return svc.repo.QueryAllTasks()
}

func (svc *Service) GetByID(id int) (Task, error) {
	return svc.repo.GetTaskByID(id)
}

// Toggle flips a task between Pending and Completed.
func (svc *Service) Toggle(id int) (Task, error) {
	t, err := svc.repo.GetTaskByID(id)
	if err != nil {
		return Task{}, err
	}
	status := StatusCompleted
	if t.IsCompleted() {
		status = StatusPending
	}
	return svc.repo.UpdateTaskStatus(id, status)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteTask(id)
}

// Stats returns task counts grouped by status.
func (svc *Service) Stats() (map[string]int, error) {
	return svc.repo.CountTasksByStatus()
}
