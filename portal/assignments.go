package portal

import (
	"context"
	"strings"
	"time"

	"github.com/subassign/portal/client"
	"github.com/subassign/portal/session"
)

type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterUpcoming
	FilterOverdue
)

// IsUpcoming and IsOverdue use strict inequalities on both sides: an
// assignment due exactly now is neither.
func IsUpcoming(a client.Assignment, now time.Time) bool {
	return a.DueDate.After(now)
}

func IsOverdue(a client.Assignment, now time.Time) bool {
	return a.DueDate.Before(now)
}

// AssignmentList holds the last-fetched assignment collection plus the
// search and status filters applied to it. It refetches in full on every
// Refresh; there is no cross-view cache.
type AssignmentList struct {
	client   client.Client
	sessions *session.Store

	items  []client.Assignment
	query  string
	status StatusFilter
}

func NewAssignmentList(c client.Client, sessions *session.Store) *AssignmentList {
	return &AssignmentList{client: c, sessions: sessions}
}

// Refresh replaces the held collection with a fresh fetch. On failure
// the previous collection stays in place.
func (l *AssignmentList) Refresh(ctx context.Context) error {
	items, err := l.client.ListAssignments(ctx)
	if err != nil {
		return surface(l.sessions, err)
	}
	l.items = items
	return nil
}

func (l *AssignmentList) SetQuery(query string) {
	l.query = query
}

func (l *AssignmentList) SetStatusFilter(status StatusFilter) {
	l.status = status
}

func (l *AssignmentList) Query() string {
	return l.query
}

func (l *AssignmentList) StatusFilter() StatusFilter {
	return l.status
}

// Items returns the unfiltered held collection.
func (l *AssignmentList) Items() []client.Assignment {
	res := make([]client.Assignment, len(l.items))
	copy(res, l.items)
	return res
}

func (l *AssignmentList) matchesStatus(a client.Assignment, now time.Time) bool {
	switch l.status {
	case FilterUpcoming:
		return IsUpcoming(a, now)
	case FilterOverdue:
		return IsOverdue(a, now)
	}
	return true
}

func (l *AssignmentList) matchesQuery(a client.Assignment) bool {
	if l.query == "" {
		return true
	}
	q := strings.ToLower(l.query)
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Description), q)
}

// Visible applies the search and status filters conjunctively.
func (l *AssignmentList) Visible(now time.Time) []client.Assignment {
	var res []client.Assignment
	for _, a := range l.items {
		if l.matchesStatus(a, now) && l.matchesQuery(a) {
			res = append(res, a)
		}
	}
	return res
}

// Create publishes a new assignment and refreshes nothing: each view
// refetches on entry.
func (l *AssignmentList) Create(ctx context.Context, p client.CreateAssignmentParams) (*client.Assignment, error) {
	created, err := l.client.CreateAssignment(ctx, p)
	if err != nil {
		return nil, surface(l.sessions, err)
	}
	return created, nil
}

// Delete removes the assignment from the held collection only after the
// Domain Client confirms the deletion. Failures leave it untouched.
func (l *AssignmentList) Delete(ctx context.Context, id string) error {
	if err := l.client.DeleteAssignment(ctx, id); err != nil {
		return surface(l.sessions, err)
	}
	for i, a := range l.items {
		if a.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return nil
}
