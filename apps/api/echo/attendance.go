package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aliHasanov22/holb-st-m/core"
	"github.com/aliHasanov22/holb-st-m/core/attendance"
	"github.com/aliHasanov22/holb-st-m/core/geo"
)

const checkInDeniedMsg = "You are too far from campus to check in."

type attendanceApi struct {
	svc   *attendance.Service
	fence geo.Fence
}

func registerAttendanceAPI(g *echo.Group, svc *attendance.Service, fence geo.Fence) {
	api := attendanceApi{svc: svc, fence: fence}

	ag := g.Group("/attendance")
	ag.GET("", api.currentWeek)
	ag.POST("", api.create)
	ag.POST("/check-location", api.checkLocation)
}

// Handlers

func (api *attendanceApi) create(ctx echo.Context) error {
	var data attendance.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	rec, err := api.svc.Log(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *attendanceApi) currentWeek(ctx echo.Context) error {
	week, err := api.svc.CurrentWeek()
	if err != nil {
		return errors.Wrap(err, "querying current week")
	}
	return ctx.JSON(http.StatusOK, week)
}

// checkLocation classifies the caller's coordinates against the campus fence.
// A denial is a valid negative result, not an error.
func (api *attendanceApi) checkLocation(ctx echo.Context) error {
	var data CheckLocationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CheckLocationRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res := api.fence.Check(*data.Latitude, *data.Longitude)
	if !res.Allowed {
		return ctx.JSON(http.StatusForbidden, CheckLocationResponse{
			Status:         "denied",
			Message:        checkInDeniedMsg,
			DistanceMeters: attendance.Round2(res.DistanceMeters),
		})
	}

	return ctx.JSON(http.StatusOK, CheckLocationResponse{
		Status:         "allowed",
		Time:           attendance.NowFunc().UTC().Format(core.ClockLayout),
		DistanceMeters: attendance.Round2(res.DistanceMeters),
	})
}

type (
	CheckLocationRequest struct {
		Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	}

	CheckLocationResponse struct {
		Status         string  `json:"status"`
		Time           string  `json:"time,omitempty"`
		Message        string  `json:"message,omitempty"`
		DistanceMeters float64 `json:"distance_meters"`
	}
)

func (cr *CheckLocationRequest) Validate() error { return core.Validate.Struct(cr) }
