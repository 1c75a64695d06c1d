package domain

import (
	"sort"
	"strings"
)

// Project is a Toggl project enriched with local-only state (the alias).
// Client and Alias use the empty string for "not set".
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	WorkspaceID int64  `json:"workspace_id"`
	Client      string `json:"client"`
	Alias       string `json:"alias"`
	Billable    bool   `json:"billable"`
}

// Display renders the project for lists and menus: "[alias] Name — Client (€)".
// The client suffix is omitted when the name already contains it.
func (p *Project) Display() string {
	var b strings.Builder
	if p.Alias != "" {
		b.WriteString("[" + p.Alias + "] ")
	}
	b.WriteString(p.Name)
	if p.Client != "" && !strings.Contains(p.Name, p.Client) {
		b.WriteString(" — " + p.Client)
	}
	if p.Billable {
		b.WriteString(" (€)")
	}
	return b.String()
}

// clientRank partitions projects for ordering: projects with a regular
// client come first, the fallback client next, clientless projects last.
func clientRank(client, fallbackClient string) int {
	switch client {
	case "":
		return 2
	case fallbackClient:
		return 1
	default:
		return 0
	}
}

// LessProjects reports whether a orders before b under the
// (client rank, client, name) key. It is a strict weak ordering.
func LessProjects(a, b *Project, fallbackClient string) bool {
	ra, rb := clientRank(a.Client, fallbackClient), clientRank(b.Client, fallbackClient)
	if ra != rb {
		return ra < rb
	}
	if a.Client != b.Client {
		return a.Client < b.Client
	}
	return a.Name < b.Name
}

// SortProjects sorts in place by client rank, then client, then name.
func SortProjects(ps []*Project, fallbackClient string) {
	sort.Slice(ps, func(i, j int) bool {
		return LessProjects(ps[i], ps[j], fallbackClient)
	})
}
