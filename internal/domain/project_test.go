package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const fallback = "Lunatech"

func TestSortProjectsClientRank(t *testing.T) {
	ps := []*Project{
		{ID: 1, Name: "No Client"},
		{ID: 2, Name: "Internal", Client: fallback},
		{ID: 3, Name: "Website", Client: "Zeta"},
		{ID: 4, Name: "Backend", Client: "Acme"},
	}

	SortProjects(ps, fallback)

	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	// regular clients first, then the fallback client, then clientless
	assert.Equal(t, []string{"Backend", "Website", "Internal", "No Client"}, names)
}

func TestSortProjectsTieBrokenByName(t *testing.T) {
	ps := []*Project{
		{ID: 1, Name: "Zulu", Client: "Acme"},
		{ID: 2, Name: "Alpha", Client: "Acme"},
		{ID: 3, Name: "Mike", Client: "Acme"},
	}

	SortProjects(ps, fallback)

	assert.Equal(t, "Alpha", ps[0].Name)
	assert.Equal(t, "Mike", ps[1].Name)
	assert.Equal(t, "Zulu", ps[2].Name)
}

func TestLessProjectsIrreflexive(t *testing.T) {
	p := &Project{ID: 1, Name: "Same", Client: "Acme"}
	assert.False(t, LessProjects(p, p, fallback))
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		want    string
	}{
		{
			"plain",
			Project{Name: "Website"},
			"Website",
		},
		{
			"with client and billable",
			Project{Name: "Website", Client: "Acme", Billable: true},
			"Website — Acme (€)",
		},
		{
			"alias prefix",
			Project{Name: "Website", Alias: "web", Client: "Acme"},
			"[web] Website — Acme",
		},
		{
			"client contained in name is not repeated",
			Project{Name: "Acme Website", Client: "Acme"},
			"Acme Website",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.project.Display())
		})
	}
}
