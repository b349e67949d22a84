package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core/study"
)

type studyApi struct {
	svc *study.Service
}

func registerStudyAPI(g *echo.Group, svc *study.Service) {
	api := studyApi{svc: svc}

	sg := g.Group("/study")
	sg.GET("", api.query)
	sg.POST("", api.create)
}

func (api *studyApi) query(ctx echo.Context) error {
	sessions, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying study sessions")
	}
	if sessions == nil {
		sessions = []study.Session{}
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *studyApi) create(ctx echo.Context) error {
	var data study.NewSession
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSession")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.svc.Log(data)
	if err != nil {
		return errors.Wrap(err, "logging study session")
	}
	return ctx.JSON(http.StatusCreated, s)
}
