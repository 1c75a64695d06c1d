package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andy/togglcli/internal/domain"
	"github.com/andy/togglcli/internal/rounding"
	"github.com/andy/togglcli/internal/store"
	"github.com/andy/togglcli/internal/toggl"
)

var (
	ErrEntryAlreadyRunning = errors.New("a time entry is already running")
	ErrNoActiveEntry       = errors.New("no time entry is currently running")
	ErrNoProjectSelected   = errors.New("no project specified and no default project set")
	ErrProjectNotFound     = errors.New("project not found")
)

// API is the slice of the Toggl client the tracker needs.
type API interface {
	CurrentEntry(ctx context.Context) (*domain.TimeEntry, error)
	FetchProjects(ctx context.Context) ([]*domain.Project, error)
	CreateEntry(ctx context.Context, workspaceID int64, req toggl.CreateEntryRequest) (*domain.TimeEntry, error)
	StopEntry(ctx context.Context, workspaceID, entryID int64, stop time.Time) (*domain.TimeEntry, error)
}

// StartResult describes a successfully started entry.
type StartResult struct {
	Entry       *domain.TimeEntry
	Project     *domain.Project
	StartedAt   time.Time
	UsedDefault bool
}

// StopResult describes a successfully stopped entry.
type StopResult struct {
	EntryID     int64
	Description string
	StoppedAt   time.Time
	RoundedUp   bool
	Confirmed   bool
}

// TrackerService implements the CLI verbs against the remote tracker.
type TrackerService interface {
	// Init fetches clients and projects and writes a fresh tracker config
	// with no default project. Returns the number of projects stored.
	Init(ctx context.Context) (int, error)

	// RefreshProjects fetches fresh projects and merges locally-set aliases
	// and the default project from the stored config.
	RefreshProjects(ctx context.Context) (*store.Config, error)

	// Start begins a new entry. The selector resolves by alias or name; an
	// empty selector falls back to the configured default project.
	Start(ctx context.Context, description, selector string, billable bool) (*StartResult, error)

	// End stops the currently running entry, rounding the stop time onto
	// the 15-minute grid.
	End(ctx context.Context) (*StopResult, error)
}

type trackerService struct {
	api            API
	store          *store.Store
	fallbackClient string
	now            func() time.Time
}

// NewTrackerService creates a tracker service.
func NewTrackerService(api API, st *store.Store, fallbackClient string) TrackerService {
	return &trackerService{
		api:            api,
		store:          st,
		fallbackClient: fallbackClient,
		now:            time.Now,
	}
}

func (s *trackerService) Init(ctx context.Context) (int, error) {
	projects, err := s.api.FetchProjects(ctx)
	if err != nil {
		return 0, err
	}
	domain.SortProjects(projects, s.fallbackClient)

	cfg := store.NewConfig(projects, nil)
	if err := s.store.Save(cfg); err != nil {
		return 0, err
	}
	return len(projects), nil
}

func (s *trackerService) RefreshProjects(ctx context.Context) (*store.Config, error) {
	old, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	fresh, err := s.api.FetchProjects(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortProjects(fresh, s.fallbackClient)

	return store.MergeRefresh(old, fresh), nil
}

func (s *trackerService) Start(ctx context.Context, description, selector string, billable bool) (*StartResult, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	// The remote service, not the local config, is the source of truth for
	// whether something is running.
	current, err := s.api.CurrentEntry(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, fmt.Errorf("%w (ID: %d): end it first with `togglcli end`", ErrEntryAlreadyRunning, current.ID)
	}

	project := cfg.Project(selector)
	if project == nil {
		if selector == "" {
			return nil, ErrNoProjectSelected
		}
		return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, selector)
	}

	start := rounding.Down(s.now())
	req := toggl.NewRunningEntryRequest(description, project, start, billable && project.Billable)

	entry, err := s.api.CreateEntry(ctx, project.WorkspaceID, req)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.ID == 0 {
		return nil, errors.New("failed to start entry: API response did not contain an entry ID")
	}

	return &StartResult{
		Entry:       entry,
		Project:     project,
		StartedAt:   start,
		UsedDefault: selector == "",
	}, nil
}

func (s *trackerService) End(ctx context.Context) (*StopResult, error) {
	current, err := s.api.CurrentEntry(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoActiveEntry
	}

	stop, roundedUp := rounding.StopTime(current.Start, s.now())

	stopped, err := s.api.StopEntry(ctx, current.WorkspaceID, current.ID, stop)
	if err != nil {
		return nil, err
	}

	result := &StopResult{
		EntryID:     current.ID,
		Description: current.Description,
		StoppedAt:   stop,
		RoundedUp:   roundedUp,
		Confirmed:   stopped != nil,
	}
	if stopped != nil {
		result.Description = stopped.Description
		return result, nil
	}

	// The stop endpoint may answer with an empty body. Fetch the current
	// entry once more to confirm the timer actually stopped.
	still, err := s.api.CurrentEntry(ctx)
	if err != nil {
		return nil, err
	}
	if still != nil && still.ID == current.ID {
		return nil, fmt.Errorf("stop request for entry %d did not take effect", current.ID)
	}
	result.Confirmed = true
	return result, nil
}
