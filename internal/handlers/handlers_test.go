package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/jwt"
)

const testEmail = "ana@example.com"

// newRequest builds a request carrying claims for userID and optional chi URL params.
func newRequest(t *testing.T, method, target string, body any, userID uuid.UUID, params map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	ctx := req.Context()
	if userID != uuid.Nil {
		ctx = jwt.WithClaims(ctx, &jwt.Claims{UserID: userID, Email: testEmail})
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Detail
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    int
		wantErr bool
	}{
		{name: "absent", target: "/x", want: 7},
		{name: "present", target: "/x?days=30", want: 30},
		{name: "negative", target: "/x?days=-2", want: -2},
		{name: "garbage", target: "/x?days=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := queryInt(httptest.NewRequest(http.MethodGet, tt.target, nil), "days", 7)
			if tt.wantErr {
				assert.EqualError(t, err, "days must be an integer")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_ReportsJSONFieldNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"email":"nope","password":"secret123","name":"Ana"}`))
	var body RegisterRequest
	err := decodeJSON(httptest.NewRecorder(), req, &body)
	assert.EqualError(t, err, "email must be a valid email")
}

func TestRequireClaims_Missing(t *testing.T) {
	rr := httptest.NewRecorder()
	_, ok := requireClaims(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Not authenticated", decodeDetail(t, rr))
}

func TestRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRootHandler("1.0.0")(rr, httptest.NewRequest(http.MethodGet, "/api/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp RootResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, RootResponse{Message: "Plan Alimenticio Personalizado API", Version: "1.0.0"}, resp)
}
