package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/note"
)

type noteApi struct {
	svc *note.Service
}

func registerNoteAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *note.Service) {
	api := noteApi{svc: svc}

	ng := g.Group("/notes", auth)
	ng.GET("", api.query)
	ng.POST("", api.create)
	ng.GET("/:id/summary", api.summary)
	ng.GET("/:id/flashcards", api.flashcards)
	ng.GET("/:id/quiz", api.quiz)
}

// Handlers

func (api *noteApi) query(ctx echo.Context) error {
	notes, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying notes")
	}
	if notes == nil {
		notes = []note.Note{}
	}
	return ctx.JSON(http.StatusOK, notes)
}

func (api *noteApi) create(ctx echo.Context) error {
	var data note.NewNote
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNote")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	n, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating note")
	}
	return ctx.JSON(http.StatusCreated, n)
}

func (api *noteApi) summary(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	summary, err := api.svc.Summary(id)
	if err != nil {
		if errors.Cause(err) == note.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "summarizing note")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"summary": summary})
}

func (api *noteApi) flashcards(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	cards, err := api.svc.Flashcards(id)
	if err != nil {
		if errors.Cause(err) == note.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "generating flashcards")
	}
	if cards == nil {
		cards = []note.Flashcard{}
	}
	return ctx.JSON(http.StatusOK, cards)
}

func (api *noteApi) quiz(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	questions, err := api.svc.Quiz(id)
	if err != nil {
		if errors.Cause(err) == note.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "generating quiz")
	}
	if questions == nil {
		questions = []note.QuizQuestion{}
	}
	return ctx.JSON(http.StatusOK, questions)
}
