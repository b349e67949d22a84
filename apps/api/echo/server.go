package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/aliHasanov22/holb-st-m/core"
	"github.com/aliHasanov22/holb-st-m/core/attendance"
	"github.com/aliHasanov22/holb-st-m/core/geo"
	"github.com/aliHasanov22/holb-st-m/core/note"
	"github.com/aliHasanov22/holb-st-m/core/study"
	"github.com/aliHasanov22/holb-st-m/core/task"
	"github.com/aliHasanov22/holb-st-m/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger
		// SignalShutdown is called whenever a core.shutdown error is caught
		// so main can stop the process gracefully.
		SignalShutdown func()

		TaskSvc       *task.Service
		StudySvc      *study.Service
		AttendanceSvc *attendance.Service
		NoteSvc       *note.Service
		UserSvc       *user.Service
		Sessions      user.SessionStore
		Fence         geo.Fence
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.SignalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	auth := sessionAuthMiddleware(s.opts.Sessions, s.opts.UserSvc)

	registerTaskAPI(v1, s.opts.TaskSvc)
	registerStudyAPI(v1, s.opts.StudySvc)
	registerAttendanceAPI(v1, s.opts.AttendanceSvc, s.opts.Fence)
	registerNoteAPI(v1, auth, s.opts.NoteSvc)
	registerUserAPI(v1, auth, s.opts.UserSvc, s.opts.Sessions)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+core.Conf.AppName+" API!")
}
