package campusapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetableportal/internal/domain"
)

func TestClient_LookupDay(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantShape domain.DayShape
		wantDocs  int
	}{
		{
			name:      "array of documents",
			body:      `[{"_id":"doc-1","timetableSlots":[{"time":"09:00 AM"}]},{"_id":"doc-2","timetableSlots":[]}]`,
			wantShape: domain.DayShapeList,
			wantDocs:  2,
		},
		{
			name:      "single document",
			body:      `{"_id":"doc-1","timetableSlots":[{"time":"09:00 AM"}]}`,
			wantShape: domain.DayShapeSingle,
		},
		{
			name:      "object without slots decodes as empty",
			body:      `{"message":"no timetable found"}`,
			wantShape: domain.DayShapeEmpty,
		},
		{
			name:      "null decodes as empty",
			body:      `null`,
			wantShape: domain.DayShapeEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReq *http.Request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotReq = r.Clone(r.Context())
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL+"/", nil)
			params := url.Values{"role": {"student"}, "department": {"CSE"}}
			res, err := c.LookupDay(context.Background(), "tok-123", "Monday", params)

			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, res.Shape)
			assert.Len(t, res.Documents, tt.wantDocs)

			require.NotNil(t, gotReq)
			assert.Equal(t, "/timetable/day/Monday", gotReq.URL.Path)
			assert.Equal(t, "student", gotReq.URL.Query().Get("role"))
			assert.Equal(t, "tok-123", gotReq.Header.Get("x-auth-token"))
			assert.Equal(t, "Bearer tok-123", gotReq.Header.Get("Authorization"))
		})
	}
}

func TestClient_ErrorResponses(t *testing.T) {
	t.Run("message body surfaces in the error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"no timetable found for this day"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		_, err := c.LookupDay(context.Background(), "tok", "Monday", nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "no timetable found for this day", apiErr.Message)
		assert.Equal(t, "upstream api returned status 404: no timetable found for this day", apiErr.Error())
	})

	t.Run("non-json body falls back to status text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		_, err := c.LookupDay(context.Background(), "tok", "Monday", nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Bad Gateway", apiErr.Message)
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := NewClient(srv.URL, nil)
		_, err := c.LookupDay(context.Background(), "tok", "Monday", nil)

		assert.ErrorContains(t, err, "failed to reach upstream api")
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("returns token and user", func(t *testing.T) {
		var gotIn domain.LoginInput
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotIn))
			_, _ = w.Write([]byte(`{"token":"tok-1","user":{"name":"Asha","email":"asha@example.edu","role":"student"}}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		token, user, err := c.Login(context.Background(), domain.LoginInput{Email: "asha@example.edu", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
		require.NotNil(t, user)
		assert.Equal(t, domain.RoleStudent, user.Role)
		assert.Equal(t, "asha@example.edu", gotIn.Email)
	})

	t.Run("missing token is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"user":{"name":"Asha"}}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, nil)
		_, _, err := c.Login(context.Background(), domain.LoginInput{Email: "a@b.edu", Password: "x"})

		assert.ErrorContains(t, err, "no token or user")
	})
}

func TestClient_Mutations(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, nil)
	ctx := context.Background()

	msg, err := c.CreateDaily(ctx, "tok", domain.DailyTimetable{Role: domain.RoleStudent, Day: "Monday"})
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/timetable/daily", gotPath)

	_, err = c.UpdateSlot(ctx, "tok", "doc-1", "s-1", domain.SlotEdit{Time: "09:00 AM"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/timetable/doc-1/slot/s-1", gotPath)

	_, err = c.DeleteSlot(ctx, "tok", "doc-1", "s-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/timetable/doc-1/slot/s-1", gotPath)

	_, err = c.DeleteDaily(ctx, "tok", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/timetable/doc-1", gotPath)
}
