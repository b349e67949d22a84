package inmem

import (
	"sort"

	"github.com/aliHasanov22/holb-st-m/core/note"
)

type noteRepository struct {
	db *DB
}

func NewNoteRepository(db *DB) note.Repository {
	return &noteRepository{db: db}
}

func (repo *noteRepository) CreateNote(n note.Note) (note.Note, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.noteSeq++
	n.ID = repo.db.noteSeq
	repo.db.notes[n.ID] = &n
	return n, nil
}

func (repo *noteRepository) QueryAllNotes() ([]note.Note, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	notes := make([]note.Note, 0, len(repo.db.notes))
	for _, n := range repo.db.notes {
		notes = append(notes, *n)
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID > notes[j].ID
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (repo *noteRepository) GetNoteByID(id int) (note.Note, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if n, ok := repo.db.notes[id]; ok {
		return *n, nil
	}
	return note.Note{}, note.ErrNotFound
}
