package store

import (
	"errors"
	"math/rand"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fogmite/rolodex/internal/contact"
	"github.com/fogmite/rolodex/internal/persist"
)

// fakePersister is an in-memory persistence collaborator.
type fakePersister struct {
	contacts []contact.Contact
	saveErr  error
	saves    int
}

func (f *fakePersister) Load() []contact.Contact { return f.contacts }

func (f *fakePersister) Save(contacts []contact.Contact) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.contacts = contact.Clone(contacts)
	return nil
}

func readyStore(t *testing.T, seed ...contact.Contact) (*Store, *fakePersister) {
	t.Helper()
	p := &fakePersister{contacts: seed}
	s := New(p, nil)
	s.Load()
	require.True(t, s.Ready())
	return s, p
}

func TestOperationsBeforeLoadAreRejected(t *testing.T) {
	s := New(&fakePersister{contacts: []contact.Contact{{FirstName: "Ann"}}}, nil)

	_, err := s.All()
	require.ErrorIs(t, err, ErrNotReady)

	_, err = s.Search("ann", nil)
	require.ErrorIs(t, err, ErrNotReady)

	require.ErrorIs(t, s.Add(contact.Contact{FirstName: "Bob"}), ErrNotReady)
	require.ErrorIs(t, s.Remove(contact.Contact{FirstName: "Ann"}), ErrNotReady)
	require.Equal(t, Unready, s.CurrentPhase())
}

func TestLoadIsExactlyOnce(t *testing.T) {
	s, p := readyStore(t, contact.Contact{FirstName: "Ann"})

	// A second load must not re-read or reset the collection.
	p.contacts = nil
	s.Load()

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, Ready, s.CurrentPhase())
}

func TestLoadMissingBackingFileStillBecomesReady(t *testing.T) {
	// Scenario: empty backing store. A real file collaborator with no file
	// on disk loads nil; the store must still transition to Ready.
	file := persist.NewFile(filepath.Join(t.TempDir(), "absent.toml"), nil)
	s := New(file, nil)

	s.Load()

	require.True(t, s.Ready())
	all, err := s.All()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestLoadSortsHandEditedFile(t *testing.T) {
	s, _ := readyStore(t,
		contact.Contact{FirstName: "Cid"},
		contact.Contact{FirstName: "Ann"},
	)

	all, err := s.All()
	require.NoError(t, err)
	require.Equal(t, "Ann", all[0].FirstName)
	require.Equal(t, "Cid", all[1].FirstName)
}

func TestAllReturnsACopy(t *testing.T) {
	s, _ := readyStore(t, contact.Contact{FirstName: "Ann"})

	all, err := s.All()
	require.NoError(t, err)
	all[0].FirstName = "Mutated"

	again, err := s.All()
	require.NoError(t, err)
	require.Equal(t, "Ann", again[0].FirstName)
}

func TestSearchMatchesEitherNameInOrder(t *testing.T) {
	// Scenario: search("lee") over [Ann Lee, Bob Lee] returns both, in
	// collection order.
	s, _ := readyStore(t,
		contact.Contact{FirstName: "Ann", LastName: "Lee", Phone: "1"},
		contact.Contact{FirstName: "Bob", LastName: "Lee", Phone: "2"},
	)

	got, err := s.Search("lee", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Ann", got[0].FirstName)
	require.Equal(t, "Bob", got[1].FirstName)
}

func TestSearchYieldsEveryFiftyRecords(t *testing.T) {
	var seed []contact.Contact
	for i := 0; i < 137; i++ {
		seed = append(seed, contact.Contact{FirstName: "Ann", Phone: "x"})
	}
	s, _ := readyStore(t, seed...)

	yields := 0
	_, err := s.Search("zzz", func() { yields++ })
	require.NoError(t, err)
	require.Equal(t, 2, yields, "137 records at a 50-record chunk")
}

func TestChunkedSearchEquivalentToLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	names := []string{"Ann", "Bob", "Cid", "Dora", "Lee", "Marlee", "Bee"}
	var seed []contact.Contact
	for i := 0; i < 173; i++ {
		seed = append(seed, contact.Contact{
			FirstName: names[rng.Intn(len(names))],
			LastName:  names[rng.Intn(len(names))],
		})
	}
	s, _ := readyStore(t, seed...)

	for _, query := range []string{"ee", "ann", "", "zz"} {
		chunked, err := s.Search(query, func() {})
		require.NoError(t, err)

		all, err := s.All()
		require.NoError(t, err)
		var linear []contact.Contact
		for _, c := range all {
			if c.Matches(query) {
				linear = append(linear, c)
			}
		}
		require.Equal(t, linear, chunked, "query %q", query)
	}
}

func TestAddKeepsCollectionSortedAndPersists(t *testing.T) {
	// Scenario: adding Cid Foe to [Ann Lee, Bob Lee] lands it at the end.
	s, p := readyStore(t,
		contact.Contact{FirstName: "Ann", LastName: "Lee", Phone: "1"},
		contact.Contact{FirstName: "Bob", LastName: "Lee", Phone: "2"},
	)

	require.NoError(t, s.Add(contact.Contact{FirstName: "Cid", LastName: "Foe", Phone: "3"}))

	all, err := s.All()
	require.NoError(t, err)
	require.Equal(t, []string{"Ann", "Bob", "Cid"}, firstNames(all))
	require.Equal(t, 1, p.saves)
	require.Equal(t, all, p.contacts, "on-disk state reflects memory after Add")
}

func TestSortInvariantUnderRandomAdds(t *testing.T) {
	s, _ := readyStore(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		name := string(rune('A' + rng.Intn(26)))
		require.NoError(t, s.Add(contact.Contact{FirstName: name}))

		all, err := s.All()
		require.NoError(t, err)
		require.True(t, sort.SliceIsSorted(all, func(a, b int) bool {
			return all[a].FirstName < all[b].FirstName
		}), "collection out of order after add %d", i)
	}
}

func TestRemoveFirstStructuralMatch(t *testing.T) {
	dup := contact.Contact{FirstName: "Ann", LastName: "Lee", Phone: "1"}
	s, _ := readyStore(t, dup, dup, contact.Contact{FirstName: "Bob"})

	require.NoError(t, s.Remove(dup))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, dup, all[0], "only one of the duplicates is removed")
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s, _ := readyStore(t, contact.Contact{FirstName: "Ann"})

	require.NoError(t, s.Remove(contact.Contact{FirstName: "Ghost"}))

	require.Equal(t, 1, s.Len())
}

func TestSaveFailureLeavesMemoryAuthoritative(t *testing.T) {
	s, p := readyStore(t)
	p.saveErr = errors.New("disk full")

	require.NoError(t, s.Add(contact.Contact{FirstName: "Ann"}))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 1, "in-memory state survives a failed save")
}

func firstNames(contacts []contact.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.FirstName
	}
	return out
}
