package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fogmite/rolodex/internal/contact"
)

func TestLoadMissingFileReturnsNil(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.Nil(t, f.Load())
}

func TestLoadCorruptFileReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	f := NewFile(path, nil)
	require.Nil(t, f.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	// The parent directory does not exist yet; Save must create it.
	path := filepath.Join(t.TempDir(), "nested", "dir", "contacts.toml")
	f := NewFile(path, nil)

	contacts := []contact.Contact{
		{FirstName: "Ann", LastName: "Lee", Phone: "555-0101"},
		{FirstName: "Bob", LastName: "Lee", Phone: "555-0102"},
	}
	require.NoError(t, f.Save(contacts))
	require.Equal(t, contacts, f.Load())
}

func TestSaveEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.toml")
	f := NewFile(path, nil)

	require.NoError(t, f.Save(nil))
	require.Empty(t, f.Load())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/x/y.toml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "x", "y.toml"), got)

	_, err = ExpandPath("   ")
	require.Error(t, err)
}
