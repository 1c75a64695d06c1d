// Package store persists the tracker configuration: the known projects,
// their aliases, and the default project. The file is a pretty-printed JSON
// object, read fully and rewritten fully on save (last writer wins).
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/andy/togglcli/internal/domain"
)

// ErrSetupIncomplete is returned by Load when no configuration file exists.
var ErrSetupIncomplete = errors.New("setup incomplete: run `togglcli init` first")

// Config is the persisted tracker state.
type Config struct {
	// Projects is keyed by project ID for merge/lookup; JSON object keys
	// are the decimal IDs.
	Projects map[int64]*domain.Project `json:"projects"`

	// DefaultProjectID references a key in Projects, or null when unset.
	DefaultProjectID *int64 `json:"default_project_id"`
}

// NewConfig builds a Config from a project list.
func NewConfig(projects []*domain.Project, defaultProjectID *int64) *Config {
	byID := make(map[int64]*domain.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return &Config{Projects: byID, DefaultProjectID: defaultProjectID}
}

// DefaultProject returns the configured default project, or nil.
func (c *Config) DefaultProject() *domain.Project {
	if c.DefaultProjectID == nil {
		return nil
	}
	return c.Projects[*c.DefaultProjectID]
}

// Project resolves a selector to a project: an exact alias match or a
// case-insensitive name match, aliases taking precedence. An empty selector
// falls back to the default project. Returns nil when nothing matches.
// Candidates are scanned in ID order so resolution is deterministic.
func (c *Config) Project(selector string) *domain.Project {
	if selector == "" {
		return c.DefaultProject()
	}
	ids := c.sortedIDs()
	for _, id := range ids {
		if p := c.Projects[id]; p.Alias != "" && p.Alias == selector {
			return p
		}
	}
	for _, id := range ids {
		if p := c.Projects[id]; strings.EqualFold(p.Name, selector) {
			return p
		}
	}
	return nil
}

func (c *Config) sortedIDs() []int64 {
	ids := make([]int64, 0, len(c.Projects))
	for id := range c.Projects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// MergeRefresh combines freshly fetched projects with an existing config.
// Aliases are sticky: a fresh project with an ID known to old keeps the old
// alias while every other field takes the fresh value. The default project
// carries over only if it still exists in the fresh set.
func MergeRefresh(old *Config, fresh []*domain.Project) *Config {
	var defaultID *int64
	for _, p := range fresh {
		if oldProject, ok := old.Projects[p.ID]; ok {
			p.Alias = oldProject.Alias
		}
		if old.DefaultProjectID != nil && p.ID == *old.DefaultProjectID {
			id := p.ID
			defaultID = &id
		}
	}
	return NewConfig(fresh, defaultID)
}

// Store reads and writes the tracker configuration at a fixed path.
type Store struct {
	path string
}

// New creates a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration. A missing file is reported as
// ErrSetupIncomplete so callers can direct the user to `togglcli init`.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSetupIncomplete
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if cfg.Projects == nil {
		cfg.Projects = make(map[int64]*domain.Project)
	}
	return &cfg, nil
}

// Save writes the configuration, creating parent directories as needed.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
