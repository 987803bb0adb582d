package assistant

import (
	"sync"

	"github.com/tayloree/shelfhelp/internal/matcher"
)

// Session holds the single current shopping list for one user. A new
// product reply replaces the list wholesale; intent and unrecognized
// replies leave it untouched.
type Session struct {
	mu   sync.Mutex
	list []matcher.ResolvedItem
}

// Apply records reply's items when it is a product reply and reports
// whether the list changed.
func (s *Session) Apply(reply Reply) bool {
	if reply.Kind != KindProducts {
		return false
	}
	items := make([]matcher.ResolvedItem, len(reply.Items))
	copy(items, reply.Items)

	s.mu.Lock()
	s.list = items
	s.mu.Unlock()
	return true
}

// List returns a copy of the current shopping list.
func (s *Session) List() []matcher.ResolvedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]matcher.ResolvedItem, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the number of items on the current list.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}

// Clear drops the current list.
func (s *Session) Clear() {
	s.mu.Lock()
	s.list = nil
	s.mu.Unlock()
}
