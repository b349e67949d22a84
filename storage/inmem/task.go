package inmem

import (
	"sort"
	"time"

	"github.com/aliHasanov22/holb-st-m/core/task"
)

type taskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) task.Repository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) query() []task.Task {
	tasks := make([]task.Task, 0, len(repo.db.tasks))
	for _, t := range repo.db.tasks {
		tasks = append(tasks, *t)
	}
	return tasks
}

func (repo *taskRepository) CreateTask(t task.Task) (task.Task, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.taskSeq++
	t.ID = repo.db.taskSeq
	repo.db.tasks[t.ID] = &t
	return t, nil
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tasks := repo.query()
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID > tasks[j].ID
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (repo *taskRepository) GetTaskByID(id int) (task.Task, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if t, ok := repo.db.tasks[id]; ok {
		return *t, nil
	}
	return task.Task{}, task.ErrNotFound
}

func (repo *taskRepository) UpdateTaskStatus(id int, status string) (task.Task, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.tasks[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}
	t.Status = status
	return *t, nil
}

func (repo *taskRepository) DeleteTask(id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.tasks[id]; !ok {
		return task.ErrNotFound
	}
	delete(repo.db.tasks, id)
	return nil
}

func (repo *taskRepository) CountTasksByStatus() (map[string]int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	counts := make(map[string]int)
	for _, t := range repo.db.tasks {
		counts[t.Status]++
	}
	return counts, nil
}

func (repo *taskRepository) CountTasksCreatedBetween(from, to time.Time) (total, completed int, err error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.db.tasks {
		if t.CreatedAt.Before(from) || !t.CreatedAt.Before(to) {
			continue
		}
		total++
		if t.IsCompleted() {
			completed++
		}
	}
	return total, completed, nil
}
