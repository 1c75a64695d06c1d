package toggl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/togglcli/internal/domain"
)

const testToken = "token123"

func wantAuth(t *testing.T, r *http.Request) {
	t.Helper()
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte(testToken+":api_token"))
	assert.Equal(t, want, r.Header.Get("Authorization"))
}

func TestCurrentEntry(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    *int64 // expected entry ID, nil for no entry
		wantErr bool
	}{
		{"running entry", http.StatusOK, `{"id":42,"workspace_id":100,"description":"task","start":"2026-03-10T10:07:00Z","duration":-1}`, ptr(int64(42)), false},
		{"json null", http.StatusOK, "null", nil, false},
		{"empty body", http.StatusOK, "", nil, false},
		{"no content", http.StatusNoContent, "", nil, false},
		{"server error", http.StatusInternalServerError, "boom", nil, true},
		{"undecodable body", http.StatusOK, "{not json", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				wantAuth(t, r)
				assert.Equal(t, "/me/time_entries/current", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			entry, err := NewClient(srv.URL, testToken).CurrentEntry(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, entry)
			} else {
				require.NotNil(t, entry)
				assert.Equal(t, *tt.want, entry.ID)
			}
		})
	}
}

func TestFetchProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantAuth(t, r)
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("with_related_data"))

		_, _ = w.Write([]byte(`{
			"clients": [{"id": 1, "name": "Acme"}],
			"projects": [
				{"id": 5, "workspace_id": 100, "name": "Website", "active": true, "is_private": false, "client_id": 1, "billable": true},
				{"id": 6, "workspace_id": 100, "name": "Old", "active": false, "is_private": false, "billable": false},
				{"id": 7, "workspace_id": 100, "name": "Secret", "active": true, "is_private": true, "billable": false},
				{"id": 8, "workspace_id": 100, "name": "Clientless", "active": true, "is_private": false, "billable": false}
			]
		}`))
	}))
	defer srv.Close()

	projects, err := NewClient(srv.URL, testToken).FetchProjects(context.Background())
	require.NoError(t, err)

	// inactive and private projects are filtered out
	require.Len(t, projects, 2)
	assert.Equal(t, "Website", projects[0].Name)
	assert.Equal(t, "Acme", projects[0].Client, "client id resolved to the client name")
	assert.True(t, projects[0].Billable)
	assert.Equal(t, "Clientless", projects[1].Name)
	assert.Empty(t, projects[1].Client)
}

func TestCreateEntry(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantAuth(t, r)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/workspaces/100/time_entries", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id": 900, "workspace_id": 100, "description": "task", "start": "2026-03-10T10:00:00Z", "duration": -1}`))
	}))
	defer srv.Close()

	project := &domain.Project{ID: 5, Name: "Website", WorkspaceID: 100, Billable: true}
	start := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	req := NewRunningEntryRequest("task", project, start, true)

	entry, err := NewClient(srv.URL, testToken).CreateEntry(context.Background(), 100, req)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, int64(900), entry.ID)

	assert.Equal(t, "task", got["description"])
	assert.Equal(t, float64(100), got["workspace_id"])
	assert.Equal(t, float64(5), got["project_id"])
	assert.Equal(t, "2026-03-10T10:00:00Z", got["start"])
	assert.Equal(t, float64(-1), got["duration"])
	assert.Equal(t, CreatedWith, got["created_with"])
	assert.Equal(t, true, got["billable"])
}

func TestStopEntry(t *testing.T) {
	stop := time.Date(2026, time.March, 10, 10, 15, 0, 0, time.UTC)

	t.Run("with body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wantAuth(t, r)
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/workspaces/100/time_entries/42/stop", r.URL.Path)

			var got map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "2026-03-10T10:15:00Z", got["stop"])

			_, _ = w.Write([]byte(`{"id": 42, "description": "task", "stop": "2026-03-10T10:15:00Z", "duration": 480}`))
		}))
		defer srv.Close()

		entry, err := NewClient(srv.URL, testToken).StopEntry(context.Background(), 100, 42, stop)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, int64(42), entry.ID)
	})

	t.Run("empty body is success with no data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		entry, err := NewClient(srv.URL, testToken).StopEntry(context.Background(), 100, 42, stop)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "conflict", http.StatusConflict)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, testToken).StopEntry(context.Background(), 100, 42, stop)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "409")
	})
}

func ptr[T any](v T) *T { return &v }
