package course

import "github.com/google/uuid"

// ConflictMemo caches conflict stacks per session identity for one week
// selection. It must be invalidated on every list, week or field change.
type ConflictMemo struct {
	entries map[uuid.UUID][]*Session
}

// NewConflictMemo creates an empty memo.
func NewConflictMemo() *ConflictMemo {
	return &ConflictMemo{entries: make(map[uuid.UUID][]*Session)}
}

// Invalidate drops every cached stack.
func (m *ConflictMemo) Invalidate() {
	clear(m.entries)
}

// Len returns the number of cached stacks.
func (m *ConflictMemo) Len() int {
	return len(m.entries)
}

// ConflictResolver answers "what else is in this cell" for the viewed week.
type ConflictResolver struct {
	memo *ConflictMemo
}

// NewConflictResolver creates a resolver backed by memo.
func NewConflictResolver(memo *ConflictMemo) *ConflictResolver {
	if memo == nil {
		memo = NewConflictMemo()
	}
	return &ConflictResolver{memo: memo}
}

// ConflictsFor returns the sessions of list active in weekIndex (0-based) with
// the same weekday and start slot as s, s included when it matches.
// A memo hit returns the previously computed slice unchanged.
func (r *ConflictResolver) ConflictsFor(list []*Session, weekIndex int, s *Session) []*Session {
	if s == nil {
		return []*Session{}
	}
	if s.ref != uuid.Nil {
		if cached, ok := r.memo.entries[s.ref]; ok {
			return cached
		}
	}

	result := Conflicts(list, weekIndex, s)
	if s.ref != uuid.Nil {
		r.memo.entries[s.ref] = result
	}
	return result
}

// Conflicts scans list without memoization.
func Conflicts(list []*Session, weekIndex int, s *Session) []*Session {
	result := make([]*Session, 0, 2)
	if s == nil {
		return result
	}
	week := weekIndex + 1
	for _, item := range list {
		if item.ActiveIn(week) && item.Weekday == s.Weekday && item.StartSlot == s.StartSlot {
			result = append(result, item)
		}
	}
	return result
}
