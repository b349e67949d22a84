package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/aliHasanov22/holb-st-m/core"
	"github.com/aliHasanov22/holb-st-m/core/attendance"
	"github.com/aliHasanov22/holb-st-m/core/geo"
	"github.com/aliHasanov22/holb-st-m/core/note"
	"github.com/aliHasanov22/holb-st-m/core/study"
	"github.com/aliHasanov22/holb-st-m/core/task"
	"github.com/aliHasanov22/holb-st-m/core/user"
	emailsvc "github.com/aliHasanov22/holb-st-m/services/email"
	aisvc "github.com/aliHasanov22/holb-st-m/services/summarizer"
	"github.com/aliHasanov22/holb-st-m/storage/inmem"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

// nopLogger satisfies core.Logger for tests.
type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	app      *echo.Echo
	db       *inmem.DB
	sessions user.SessionStore
	mailSvc  *emailsvc.DummyService

	taskSvc *task.Service
	userSvc *user.Service
}

func initApp(fence geo.Fence) *testEnv {
	db := inmem.Open()
	sessions := inmem.NewSessionStore()
	mailSvc := emailsvc.NewDummyService()

	taskSvc := task.NewService(inmem.NewTaskRepository(db), inmem.NewSummaryRepository(db))
	studySvc := study.NewService(inmem.NewStudyRepository(db))
	attendanceSvc := attendance.NewService(inmem.NewAttendanceRepository(db))
	noteSvc := note.NewService(inmem.NewNoteRepository(db), aisvc.NewNaiveService())
	userSvc := user.NewService(inmem.NewUserRepository(db), mailSvc)

	app := echo.New()
	app.Pre(middleware.RemoveTrailingSlash())
	app.HTTPErrorHandler = newAppHTTPErrorHandler(nopLogger{}, func() {})

	v1 := app.Group("/v1")
	auth := sessionAuthMiddleware(sessions, userSvc)
	registerTaskAPI(v1, taskSvc)
	registerStudyAPI(v1, studySvc)
	registerAttendanceAPI(v1, attendanceSvc, fence)
	registerNoteAPI(v1, auth, noteSvc)
	registerUserAPI(v1, auth, userSvc, sessions)

	return &testEnv{
		app:      app,
		db:       db,
		sessions: sessions,
		mailSvc:  mailSvc,
		taskSvc:  taskSvc,
		userSvc:  userSvc,
	}
}

func campusFence() geo.Fence {
	return geo.Fence{
		Lat:               core.Conf.Campus.Lat,
		Lon:               core.Conf.Campus.Lon,
		MaxDistanceMeters: core.Conf.Campus.MaxDistanceMeters,
	}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func registerUser(t *testing.T, env *testEnv, name, uname, email, pwd string) user.User {
	usr, err := env.userSvc.Create(user.NewUser{
		Name:            name,
		Username:        uname,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		t.Fatalf("registerUser() failed: %v", err)
	}
	return usr
}

func loginUser(t *testing.T, env *testEnv, usr user.User) string {
	sess, err := env.sessions.CreateSession(usr.ID, core.Conf.SessionTTL)
	if err != nil {
		t.Fatalf("loginUser() failed: %v", err)
	}
	return sess.Token
}
