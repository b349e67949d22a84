package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/aliHasanov22/holb-st-m/core/study"
)

func Test_studyApi(t *testing.T) {
	now := time.Date(2021, time.March, 10, 12, 0, 0, 0, time.UTC)
	origNowFunc := study.NowFunc
	study.NowFunc = func() time.Time { return now }
	defer func() { study.NowFunc = origNowFunc }()

	env := initApp(campusFence())

	tests := []httpTest{
		{
			name: "empty list", method: http.MethodGet, path: "/v1/study",
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
		{
			name: "log requires subject and duration", method: http.MethodPost, path: "/v1/study",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"subject":"this field is required","duration":"this field is required"}`),
		},
		{
			name: "log session", method: http.MethodPost, path: "/v1/study",
			body:     []byte(`{"subject":"Math","duration":45}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"subject":"Math","duration":45}`),
		},
		{
			name: "log another", method: http.MethodPost, path: "/v1/study",
			body:     []byte(`{"subject":"Physics","duration":30}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"subject":"Physics","duration":30}`),
		},
		{
			name: "list newest first", method: http.MethodGet, path: "/v1/study",
			wantCode: http.StatusOK,
			wantData: []byte(`[{"subject":"Physics","duration":30},{"subject":"Math","duration":45}]`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			env.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
