package domain

import "time"

// TimeEntry is a tracked interval of work, owned entirely by the remote
// service. The CLI only ever reads the currently running entry and issues
// start/stop mutations; entries are never persisted locally.
type TimeEntry struct {
	ID          int64
	WorkspaceID int64
	ProjectID   *int64
	Description string
	Start       time.Time
	Stop        *time.Time
	Duration    int64
	Billable    bool
}

// Running reports whether the entry is still open. Toggl marks a running
// entry with a negative duration and no stop time.
func (e *TimeEntry) Running() bool {
	return e.Stop == nil && e.Duration < 0
}
