package inmem

import (
	"sort"

	"github.com/aliHasanov22/holb-st-m/core/study"
)

type studyRepository struct {
	db *DB
}

func NewStudyRepository(db *DB) study.Repository {
	return &studyRepository{db: db}
}

func (repo *studyRepository) CreateSession(s study.Session) (study.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.studySeq++
	s.ID = repo.db.studySeq
	repo.db.studies[s.ID] = &s
	return s, nil
}

func (repo *studyRepository) QueryAllSessions() ([]study.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	sessions := make([]study.Session, 0, len(repo.db.studies))
	for _, s := range repo.db.studies {
		sessions = append(sessions, *s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].ID > sessions[j].ID
		}
		return sessions[i].Date.After(sessions[j].Date)
	})
	return sessions, nil
}
