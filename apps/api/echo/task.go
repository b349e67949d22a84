package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/task"
)

type taskApi struct {
	svc *task.Service
}

func registerTaskAPI(g *echo.Group, svc *task.Service) {
	api := taskApi{svc: svc}

	tg := g.Group("/tasks")
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.GET("/stats", api.stats)
	tg.GET("/weekly-summary", api.weeklySummary)
	tg.PUT("/:id/toggle", api.toggle)
	tg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *taskApi) query(ctx echo.Context) error {
	tasks, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *taskApi) create(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	t, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating task")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *taskApi) toggle(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	t, err := api.svc.Toggle(id)
	if err != nil {
		if errors.Cause(err) == task.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "toggling task")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *taskApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Delete(id); err != nil {
		if errors.Cause(err) == task.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting task")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *taskApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats()
	if err != nil {
		return errors.Wrap(err, "counting tasks")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *taskApi) weeklySummary(ctx echo.Context) error {
	summaries, err := api.svc.WeeklySummaries()
	if err != nil {
		return errors.Wrap(err, "rolling weekly summaries")
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}
