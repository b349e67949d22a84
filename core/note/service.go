package note

import (
	"errors"
	"time"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("note not found")
)

type (
	Repository interface {
		CreateNote(n Note) (Note, error)
		// QueryAllNotes returns all notes, newest first.
		QueryAllNotes() ([]Note, error)
		GetNoteByID(id int) (Note, error)
	}

	// Summarizer is any service that can derive study aids from a note.
	// The actual AI call lives behind this boundary.
	Summarizer interface {
		Summarize(n Note) (string, error)
		Flashcards(n Note) ([]Flashcard, error)
		Quiz(n Note) ([]QuizQuestion, error)
	}

	Service struct {
		repo Repository
		ai   Summarizer
	}
)

func NewService(repo Repository, ai Summarizer) *Service {
	return &Service{repo: repo, ai: ai}
}

func (svc *Service) Create(nn NewNote) (Note, error) {
	n := Note{
		Title:     nn.Title,
		Body:      nn.Body,
		CreatedAt: NowFunc().UTC(),
	}
	return svc.repo.CreateNote(n)
}

func (svc *Service) QueryAll() ([]Note, error) {
	return svc.repo.QueryAllNotes()
}

func (svc *Service) GetByID(id int) (Note, error) {
	return svc.repo.GetNoteByID(id)
}

func (svc *Service) Summary(id int) (string, error) {
	n, err := svc.repo.GetNoteByID(id)
	if err != nil {
		return "", err
	}
	return svc.ai.Summarize(n)
}

func (svc *Service) Flashcards(id int) ([]Flashcard, error) {
	n, err := svc.repo.GetNoteByID(id)
	if err != nil {
		return nil, err
	}
	return svc.ai.Flashcards(n)
}

func (svc *Service) Quiz(id int) ([]QuizQuestion, error) {
	n, err := svc.repo.GetNoteByID(id)
	if err != nil {
		return nil, err
	}
	return svc.ai.Quiz(n)
}
