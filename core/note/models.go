package note

import (
	"time"

	"github.com/aliHasanov22/holb-st-m/core"
)

type Note struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// NewNote contains information needed to create a new Note.
type NewNote struct {
	Title string `json:"title" validate:"required,max=100"`
	Body  string `json:"body" validate:"required"`
}

func (nn *NewNote) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Body = core.CleanString(nn.Body)
	return core.Validate.Struct(nn)
}

// Flashcard is one front/back study card derived from a note.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizQuestion is one multiple-choice question derived from a note;
// Answer indexes into Choices.
type QuizQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   int      `json:"answer"`
}
