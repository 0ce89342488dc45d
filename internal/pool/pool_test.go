package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeView struct {
	id     int
	active bool
}

func (v *fakeView) Activate()   { v.active = true }
func (v *fakeView) Deactivate() { v.active = false }

func newTestPool() (*Pool[*fakeView], *Container) {
	next := 0
	p := New("test-hold", func() *fakeView {
		next++
		return &fakeView{id: next}
	})
	return p, NewContainer("content")
}

func TestAcquireCreatesWhenEmpty(t *testing.T) {
	p, content := newTestPool()

	v := p.Acquire(content)

	require.True(t, v.active)
	require.True(t, content.Contains(v))
	require.Equal(t, 0, p.Size())
}

func TestReleaseParksInHoldingContainer(t *testing.T) {
	p, content := newTestPool()
	v := p.Acquire(content)

	p.Release(content, v)

	require.False(t, v.active)
	require.Equal(t, 1, p.Size())
	require.False(t, content.Contains(v), "released view still attached to content")
	require.True(t, p.Holding().Contains(v))
}

func TestLIFOReuse(t *testing.T) {
	p, content := newTestPool()
	a := p.Acquire(content)
	b := p.Acquire(content)

	p.Release(content, a)
	p.Release(content, b)

	// b was released last, so it comes back first.
	require.Same(t, b, p.Acquire(content))
	require.Same(t, a, p.Acquire(content))
	require.Equal(t, 0, p.Size())
}

func TestViewNeverLiveAndPooledAtOnce(t *testing.T) {
	p, content := newTestPool()

	views := make([]*fakeView, 0, 8)
	for i := 0; i < 8; i++ {
		views = append(views, p.Acquire(content))
	}
	for _, v := range views[:5] {
		p.Release(content, v)
	}

	for _, v := range views {
		inContent := content.Contains(v)
		inHold := p.Holding().Contains(v)
		require.NotEqual(t, inContent, inHold,
			"view %d must be in exactly one container", v.id)
		require.Equal(t, inContent, v.active)
	}
	require.Equal(t, 5, p.Size())
	require.Equal(t, 3, content.Len())
	require.Equal(t, 5, p.Holding().Len())
}

func TestContainerBookkeeping(t *testing.T) {
	c := NewContainer("x")
	require.Equal(t, "x", c.Name())
	require.Equal(t, 0, c.Len())

	v := &fakeView{}
	c.attach(v)
	require.True(t, c.Contains(v))

	c.detach(v)
	require.False(t, c.Contains(v))
	// Detaching an absent view is harmless.
	c.detach(v)
}
