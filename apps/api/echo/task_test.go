package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/aliHasanov22/holb-st-m/core/task"
)

func Test_taskApi(t *testing.T) {
	// Wednesday 2021-03-10; week starts Monday 2021-03-08
	now := time.Date(2021, time.March, 10, 12, 0, 0, 0, time.UTC)
	origNowFunc := task.NowFunc
	task.NowFunc = func() time.Time { return now }
	defer func() { task.NowFunc = origNowFunc }()

	env := initApp(campusFence())

	tests := []httpTest{
		{
			name: "empty list", method: http.MethodGet, path: "/v1/tasks",
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
		{
			name: "create requires title", method: http.MethodPost, path: "/v1/tasks",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"title":"this field is required"}`),
		},
		{
			name: "create defaults", method: http.MethodPost, path: "/v1/tasks",
			body:     []byte(`{"title":"Revise haversine"}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"id":1,"title":"Revise haversine","priority":"Medium","status":"Pending","start_date":"","due_date":""}`),
		},
		{
			name: "create with fields", method: http.MethodPost, path: "/v1/tasks",
			body:     []byte(`{"title":"Ship report","priority":"High","start_date":"2021-03-10","due_date":"2021-03-12"}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"id":2,"title":"Ship report","priority":"High","status":"Pending","start_date":"2021-03-10","due_date":"2021-03-12"}`),
		},
		{
			name: "bad start_date", method: http.MethodPost, path: "/v1/tasks",
			body:     []byte(`{"title":"Nope","start_date":"10-03-2021"}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"start_date":"must be a date formatted as YYYY-MM-DD"}`),
		},
		{
			name: "toggle completes", method: http.MethodPut, path: "/v1/tasks/1/toggle",
			wantCode: http.StatusOK,
			wantData: []byte(`{"id":1,"title":"Revise haversine","priority":"Medium","status":"Completed","start_date":"","due_date":""}`),
		},
		{
			name: "toggle unknown", method: http.MethodPut, path: "/v1/tasks/99/toggle",
			wantCode: http.StatusNotFound, wantData: []byte(`{"error":"not found"}`),
		},
		{
			name: "stats", method: http.MethodGet, path: "/v1/tasks/stats",
			wantCode: http.StatusOK, wantData: []byte(`{"Pending":1,"Completed":1}`),
		},
		{
			name: "weekly summary bootstraps previous week and appends live current",
			method: http.MethodGet, path: "/v1/tasks/weekly-summary",
			wantCode: http.StatusOK,
			wantData: []byte(`[` +
				`{"week_start":"2021-03-01","total_tasks":0,"completed_tasks":0},` +
				`{"week_start":"2021-03-08","total_tasks":2,"completed_tasks":1}` +
				`]`),
		},
		{
			name: "weekly summary is idempotent",
			method: http.MethodGet, path: "/v1/tasks/weekly-summary",
			wantCode: http.StatusOK,
			wantData: []byte(`[` +
				`{"week_start":"2021-03-01","total_tasks":0,"completed_tasks":0},` +
				`{"week_start":"2021-03-08","total_tasks":2,"completed_tasks":1}` +
				`]`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("delete", func(t *testing.T) {
		req, rec := newRequest(http.MethodDelete, "/v1/tasks/2")
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
		}

		req, rec = newRequest(http.MethodDelete, "/v1/tasks/2")
		env.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
		}
	})
}
