package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_noteApi(t *testing.T) {
	env := initApp(campusFence())
	usr := registerUser(t, env, "Ali Hasanov", "alihasanov", "ali@test.az", "Str0ngPassw0rd")
	token := loginUser(t, env, usr)

	t.Run("requires auth", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/notes")
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	body := []byte(`{"title":"Concurrency","body":"goroutine: lightweight thread\nchannel: typed conduit"}`)
	t.Run("create", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/notes", token, body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	tests := []httpTest{
		{
			name: "create requires body", method: http.MethodPost, path: "/v1/notes",
			body: []byte(`{"title":"Empty"}`), token: token,
			wantCode: http.StatusBadRequest, wantData: []byte(`{"body":"this field is required"}`),
		},
		{
			name: "summary", method: http.MethodGet, path: "/v1/notes/1/summary", token: token,
			wantCode: http.StatusOK,
			wantData: []byte(`{"summary":"goroutine: lightweight thread channel: typed conduit"}`),
		},
		{
			name: "flashcards", method: http.MethodGet, path: "/v1/notes/1/flashcards", token: token,
			wantCode: http.StatusOK,
			wantData: []byte(`[{"front":"goroutine","back":"lightweight thread"},{"front":"channel","back":"typed conduit"}]`),
		},
		{
			name: "unknown note", method: http.MethodGet, path: "/v1/notes/99/summary", token: token,
			wantCode: http.StatusNotFound, wantData: []byte(`{"error":"not found"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("quiz", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/notes/1/quiz", token)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
