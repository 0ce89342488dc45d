// Package store owns the in-memory contact collection and gates every
// operation on load readiness.
//
// # Lifecycle
//
// A store starts Unready. Load moves it through Loading to Ready exactly
// once per session; Ready is terminal. A missing or corrupt backing file
// still reaches Ready, just with an empty collection — load failure is never
// fatal. Every other operation fails with ErrNotReady until then, so no
// caller can observe a partially loaded collection.
//
// # Ownership
//
// The collection is exclusively owned by the store. All reads hand out
// copies; the window controller and UI never see the backing slice. There is
// no lock: the host runs every store operation on the cooperative scheduler,
// which is the single thread of control.
//
// # Persistence
//
// Add and Remove persist before returning, so once they return the on-disk
// state matches memory absent an I/O error. Save failures are logged and the
// in-memory collection stays authoritative for the rest of the session.
package store

import (
	"errors"
	"log/slog"

	"github.com/fogmite/rolodex/internal/contact"
	"github.com/fogmite/rolodex/internal/coop"
)

// ErrNotReady is returned by every operation invoked before Load completes.
var ErrNotReady = errors.New("contact store is not loaded yet")

// searchChunk is how many records a search examines between yields.
const searchChunk = 50

// Phase tracks the load state machine.
type Phase int

const (
	// Unready is the initial phase, before Load has been called.
	Unready Phase = iota
	// Loading is entered once, while the backing file is being read.
	Loading
	// Ready is terminal; the collection is usable for the session.
	Ready
)

// Persister is the persistence collaborator. Load returns nil for an absent
// or unreadable backing collection; it never fails.
type Persister interface {
	Load() []contact.Contact
	Save([]contact.Contact) error
}

// Store holds the ordered contact collection behind a readiness gate.
type Store struct {
	persist  Persister
	log      *slog.Logger
	phase    Phase
	contacts []contact.Contact
}

// New returns an unready store backed by p. A nil logger discards
// diagnostics.
func New(p Persister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{persist: p, log: logger}
}

// CurrentPhase returns the lifecycle phase.
func (s *Store) CurrentPhase() Phase { return s.phase }

// Ready reports whether the initial load has completed.
func (s *Store) Ready() bool { return s.phase == Ready }

// Load reads the backing collection and transitions the store to Ready.
// An absent or unreadable backing file degrades to an empty collection; the
// store still becomes Ready. Calling Load again after the first call is a
// no-op, preserving the exactly-once transition.
func (s *Store) Load() {
	if s.phase != Unready {
		return
	}
	s.phase = Loading

	loaded := s.persist.Load()
	s.contacts = contact.Clone(loaded)
	// Tolerate hand-edited files that are out of order.
	contact.Sort(s.contacts)

	s.phase = Ready
	s.log.Info("contact store loaded", "contacts", len(s.contacts))
}

// Len returns the collection size, or 0 before readiness.
func (s *Store) Len() int { return len(s.contacts) }

// All returns a copy of the ordered collection.
func (s *Store) All() ([]contact.Contact, error) {
	if s.phase != Ready {
		return nil, ErrNotReady
	}
	return contact.Clone(s.contacts), nil
}

// Search scans the collection for contacts whose first or last name contains
// query, case-insensitively. The scan is cooperative: yield is invoked after
// every 50 records examined so a large collection cannot monopolise the
// scheduler. Results come back in scan order, which is ascending first name.
func (s *Store) Search(query string, yield func()) ([]contact.Contact, error) {
	if s.phase != Ready {
		return nil, ErrNotReady
	}

	step := coop.Every(searchChunk, yield)
	var matches []contact.Contact
	for _, c := range s.contacts {
		if c.Matches(query) {
			matches = append(matches, c)
		}
		step()
	}
	return matches, nil
}

// Add inserts c, resorts the collection ascending by first name and persists
// it. The on-disk state reflects the insert once Add returns, unless saving
// failed, in which case the failure has been logged and memory wins.
func (s *Store) Add(c contact.Contact) error {
	if s.phase != Ready {
		return ErrNotReady
	}

	s.contacts = append(s.contacts, c)
	contact.Sort(s.contacts)
	s.save()
	return nil
}

// Remove deletes the first structurally equal match, then persists. A record
// with no match is a no-op apart from the save.
func (s *Store) Remove(c contact.Contact) error {
	if s.phase != Ready {
		return ErrNotReady
	}

	for i, existing := range s.contacts {
		if existing.Equal(c) {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			break
		}
	}
	s.save()
	return nil
}

func (s *Store) save() {
	if err := s.persist.Save(s.contacts); err != nil {
		s.log.Warn("persist contacts failed", "error", err)
	}
}
