package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliHasanov22/holb-st-m/core/user"
)

func Test_userApi_register(t *testing.T) {
	env := initApp(campusFence())
	registerUser(t, env, "Ali Hasanov", "alihasanov", "ali@test.az", "Str0ngPassw0rd")

	tests := []httpTest{
		{
			name: "missing fields", method: http.MethodPost, path: "/v1/users/register",
			body:     []byte(`{"name":"New Kid"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username":"this field is required","email":"this field is required",` +
				`"password":"this field is required","password_confirm":"this field is required"}`),
		},
		{
			name: "duplicate username", method: http.MethodPost, path: "/v1/users/register",
			body: []byte(`{"name":"Imposter","username":"alihasanov","email":"other@test.az",` +
				`"password":"Str0ngPassw0rd","password_confirm":"Str0ngPassw0rd"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username":"a user with this username already exists"}`),
		},
		{
			name: "duplicate email", method: http.MethodPost, path: "/v1/users/register",
			body: []byte(`{"name":"Imposter","username":"somebody","email":"ali@test.az",` +
				`"password":"Str0ngPassw0rd","password_confirm":"Str0ngPassw0rd"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"a user with this email already exists"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("register ok", func(t *testing.T) {
		body := []byte(`{"name":"New Kid","username":"newkid1","email":"kid@test.az",` +
			`"password":"Str0ngPassw0rd","password_confirm":"Str0ngPassw0rd"}`)
		req, rec := newRequest(http.MethodPost, "/v1/users/register", body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var usr user.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.NotEmpty(t, usr.ID)
		assert.Equal(t, "newkid1", usr.Username)
		assert.True(t, usr.IsActive)
	})
}

func Test_userApi_loginLogout(t *testing.T) {
	env := initApp(campusFence())
	usr := registerUser(t, env, "Ali Hasanov", "alihasanov", "ali@test.az", "Str0ngPassw0rd")

	login := func(t *testing.T, uname, pwd string) (int, []byte) {
		body := marchallObj(t, LoginRequest{Username: uname, Password: pwd})
		req, rec := newRequest(http.MethodPost, "/v1/users/login", body)
		env.app.ServeHTTP(rec, req)
		return rec.Code, rec.Body.Bytes()
	}

	t.Run("wrong password", func(t *testing.T) {
		code, body := login(t, "alihasanov", "nope")
		assert.Equal(t, http.StatusBadRequest, code)
		ok, err := jsonBytesEqual(t, body, []byte(`{"error":"invalid credentials"}`))
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown user", func(t *testing.T) {
		code, body := login(t, "ghost", "nope")
		assert.Equal(t, http.StatusBadRequest, code)
		ok, err := jsonBytesEqual(t, body, []byte(`{"error":"invalid credentials"}`))
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("login, me, logout", func(t *testing.T) {
		code, body := login(t, "alihasanov", "Str0ngPassw0rd")
		assert.Equal(t, http.StatusOK, code)

		var res LoginResponse
		assert.NoError(t, json.Unmarshal(body, &res))
		assert.NotEmpty(t, res.Token)
		assert.True(t, res.ExpiresAt.After(time.Now()))

		// email works as username too
		code, _ = login(t, "ali@test.az", "Str0ngPassw0rd")
		assert.Equal(t, http.StatusOK, code)

		req, rec := newAuthRequest(http.MethodGet, "/v1/users/me", res.Token)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		var me user.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		assert.Equal(t, usr.ID, me.ID)
		assert.Equal(t, "alihasanov", me.Username)

		req, rec = newAuthRequest(http.MethodPost, "/v1/users/logout", res.Token)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		// session is gone
		req, rec = newAuthRequest(http.MethodGet, "/v1/users/me", res.Token)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me requires auth", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/users/me")
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		sess, err := env.sessions.CreateSession(usr.ID, -time.Hour)
		assert.NoError(t, err)

		req, rec := newAuthRequest(http.MethodGet, "/v1/users/me", sess.Token)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		ok, err := jsonBytesEqual(t, rec.Body.Bytes(), []byte(`{"error":"session has expired"}`))
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

func Test_userApi_passwordReset(t *testing.T) {
	env := initApp(campusFence())
	registerUser(t, env, "Ali Hasanov", "alihasanov", "ali@test.az", "Str0ngPassw0rd")

	t.Run("request sends email", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/users/password-reset", []byte(`{"email":"ali@test.az"}`))
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, env.mailSvc.Sent(), 1)
	})

	t.Run("unknown email still succeeds", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/users/password-reset", []byte(`{"email":"ghost@test.az"}`))
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, env.mailSvc.Sent(), 1) // unchanged
	})

	t.Run("confirm with bad token", func(t *testing.T) {
		body := []byte(`{"uid":"bogus","token":"bogus","password":"NewPassw0rd!","password_confirm":"NewPassw0rd!"}`)
		req, rec := newRequest(http.MethodPost, "/v1/users/password-reset-confirm", body)
		env.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
