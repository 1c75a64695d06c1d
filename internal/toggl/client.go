// Package toggl is a thin client for the Toggl Track API v9. Calls are
// synchronous with no retry; any transport failure, non-2xx status, or
// undecodable body is an error for the caller to treat as fatal.
package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"

	"github.com/andy/togglcli/internal/domain"
	"github.com/andy/togglcli/internal/rounding"
)

// DefaultBaseURL is the production API v9 endpoint.
const DefaultBaseURL = "https://api.track.toggl.com/api/v9"

// CreatedWith tags entries created by this tool.
const CreatedWith = "togglcli"

// runningDuration is the sentinel Toggl uses for a still-running entry.
const runningDuration = -1

// Client talks to the Toggl Track API using basic auth with the API token
// as username and the fixed "api_token" password.
type Client struct {
	http fastshot.ClientHttpMethods
}

// NewClient builds a client for the given base URL and API token.
func NewClient(baseURL, apiToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := fastshot.NewClient(baseURL)
	c.Auth().BasicAuth(apiToken, "api_token")
	return &Client{
		http: c.Config().SetTimeout(30 * time.Second).
			Header().Add("Content-Type", "application/json").
			Header().Add("Accept", "application/json").
			Build(),
	}
}

// CurrentEntry fetches the currently running time entry. A null, empty, or
// 204 response means nothing is running and is not an error.
func (c *Client) CurrentEntry(ctx context.Context) (*domain.TimeEntry, error) {
	resp, err := c.http.GET("/me/time_entries/current").
		Context().Set(ctx).
		Send()
	if err != nil {
		return nil, fmt.Errorf("toggl: current entry: %w", err)
	}
	defer resp.Body().Close()

	var raw rawTimeEntry
	ok, err := decodeBody(resp, &raw)
	if err != nil {
		return nil, fmt.Errorf("toggl: current entry: %w", err)
	}
	if !ok || raw.ID == 0 {
		return nil, nil
	}
	return raw.toDomain(), nil
}

// FetchProjects loads the user's clients and projects from the
// with_related_data view of /me. Inactive and private projects are dropped;
// client IDs are resolved to names.
func (c *Client) FetchProjects(ctx context.Context) ([]*domain.Project, error) {
	resp, err := c.http.GET("/me").
		Context().Set(ctx).
		Query().AddParam("with_related_data", "true").
		Send()
	if err != nil {
		return nil, fmt.Errorf("toggl: fetch user data: %w", err)
	}
	defer resp.Body().Close()

	var me rawMe
	ok, err := decodeBody(resp, &me)
	if err != nil {
		return nil, fmt.Errorf("toggl: fetch user data: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("toggl: empty response from /me")
	}

	clientNames := make(map[int64]string, len(me.Clients))
	for _, cl := range me.Clients {
		clientNames[cl.ID] = cl.Name
	}

	projects := make([]*domain.Project, 0, len(me.Projects))
	for _, p := range me.Projects {
		if !p.Active || p.IsPrivate {
			continue
		}
		project := &domain.Project{
			ID:          p.ID,
			Name:        p.Name,
			WorkspaceID: p.WorkspaceID,
			Billable:    p.Billable,
		}
		if p.ClientID != nil {
			project.Client = clientNames[*p.ClientID]
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// CreateEntryRequest is the payload for starting a time entry.
type CreateEntryRequest struct {
	Description string `json:"description"`
	WorkspaceID int64  `json:"workspace_id"`
	ProjectID   *int64 `json:"project_id,omitempty"`
	Start       string `json:"start"`
	Duration    int64  `json:"duration"`
	CreatedWith string `json:"created_with"`
	Billable    bool   `json:"billable"`
}

// NewRunningEntryRequest builds the creation payload for a running entry
// starting at start.
func NewRunningEntryRequest(description string, project *domain.Project, start time.Time, billable bool) CreateEntryRequest {
	req := CreateEntryRequest{
		Description: description,
		WorkspaceID: project.WorkspaceID,
		Start:       rounding.FormatISO(start),
		Duration:    runningDuration,
		CreatedWith: CreatedWith,
		Billable:    billable,
	}
	if project.ID != 0 {
		id := project.ID
		req.ProjectID = &id
	}
	return req
}

// CreateEntry starts a new time entry in the given workspace.
func (c *Client) CreateEntry(ctx context.Context, workspaceID int64, req CreateEntryRequest) (*domain.TimeEntry, error) {
	resp, err := c.http.POST(fmt.Sprintf("/workspaces/%d/time_entries", workspaceID)).
		Context().Set(ctx).
		Body().AsJSON(req).
		Send()
	if err != nil {
		return nil, fmt.Errorf("toggl: create entry: %w", err)
	}
	defer resp.Body().Close()

	var raw rawTimeEntry
	ok, err := decodeBody(resp, &raw)
	if err != nil {
		return nil, fmt.Errorf("toggl: create entry: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return raw.toDomain(), nil
}

// StopEntry stops a running time entry at the given stop time. Some server
// responses carry no body; that is success-with-no-data and returns nil, nil.
func (c *Client) StopEntry(ctx context.Context, workspaceID, entryID int64, stop time.Time) (*domain.TimeEntry, error) {
	payload := map[string]string{"stop": rounding.FormatISO(stop)}
	resp, err := c.http.PATCH(fmt.Sprintf("/workspaces/%d/time_entries/%d/stop", workspaceID, entryID)).
		Context().Set(ctx).
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return nil, fmt.Errorf("toggl: stop entry: %w", err)
	}
	defer resp.Body().Close()

	var raw rawTimeEntry
	ok, err := decodeBody(resp, &raw)
	if err != nil {
		return nil, fmt.Errorf("toggl: stop entry: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return raw.toDomain(), nil
}

// decodeBody reads the response body into v. It returns ok=false for the
// success-with-no-data cases: 204, an empty body, or a JSON null. Non-2xx
// statuses are errors carrying the status and a truncated body.
func decodeBody(resp *fastshot.Response, v any) (ok bool, err error) {
	if resp.Status().IsError() {
		body, readErr := resp.Body().AsString()
		if readErr != nil {
			body = ""
		}
		return false, fmt.Errorf("unexpected status %d: %s", resp.Status().Code(), truncate(body, 512))
	}

	body, err := resp.Body().AsString()
	if err != nil {
		return false, fmt.Errorf("failed to read response body: %w", err)
	}
	body = strings.TrimSpace(body)
	if body == "" || body == "null" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return false, fmt.Errorf("failed to decode response body: %w", err)
	}
	return true, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// rawMe mirrors the slice of the /me?with_related_data=true response we use.
type rawMe struct {
	Clients  []rawClient  `json:"clients"`
	Projects []rawProject `json:"projects"`
}

type rawClient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type rawProject struct {
	ID          int64  `json:"id"`
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	IsPrivate   bool   `json:"is_private"`
	ClientID    *int64 `json:"client_id"`
	Billable    bool   `json:"billable"`
}

// rawTimeEntry mirrors the time entry JSON from Toggl v9.
type rawTimeEntry struct {
	ID          int64      `json:"id"`
	WorkspaceID int64      `json:"workspace_id"`
	Description string     `json:"description"`
	ProjectID   *int64     `json:"project_id"`
	Start       time.Time  `json:"start"`
	Stop        *time.Time `json:"stop"`
	Duration    int64      `json:"duration"`
	Billable    bool       `json:"billable"`
}

func (r *rawTimeEntry) toDomain() *domain.TimeEntry {
	entry := &domain.TimeEntry{
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		Description: r.Description,
		Start:       r.Start,
		Duration:    r.Duration,
		Billable:    r.Billable,
	}
	if r.ProjectID != nil {
		id := *r.ProjectID
		entry.ProjectID = &id
	}
	if r.Stop != nil {
		stop := *r.Stop
		entry.Stop = &stop
	}
	return entry
}
