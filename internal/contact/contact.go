// Package contact defines the contact record and its ordering rules.
//
// A contact has no synthetic identifier; identity is structural. The
// collection-level invariant enforced by the store is that contacts are
// always sorted ascending by first name after any mutation.
package contact

import (
	"slices"
	"strings"
)

// Contact is a single address-book entry.
type Contact struct {
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
	Phone     string `toml:"phone"`
}

// DisplayName returns the human-readable "First Last" form.
func (c Contact) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// Equal reports structural equality, the identity used for removal.
func (c Contact) Equal(other Contact) bool {
	return c == other
}

// Matches reports whether query is a case-insensitive substring of either
// the first or last name. An empty query matches everything.
func (c Contact) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.FirstName), q) ||
		strings.Contains(strings.ToLower(c.LastName), q)
}

// Less orders contacts ascending by first name.
func Less(a, b Contact) bool {
	return a.FirstName < b.FirstName
}

// Sort sorts contacts in place, ascending by first name. The sort is stable
// so equal first names keep their relative order across resorts.
func Sort(contacts []Contact) {
	slices.SortStableFunc(contacts, func(a, b Contact) int {
		return strings.Compare(a.FirstName, b.FirstName)
	})
}

// Clone returns an independent copy of the contact slice. Callers hand these
// out as read-only snapshots.
func Clone(contacts []Contact) []Contact {
	if len(contacts) == 0 {
		return nil
	}
	dup := make([]Contact, len(contacts))
	copy(dup, contacts)
	return dup
}
