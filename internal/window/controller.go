package window

import (
	"github.com/fogmite/rolodex/internal/contact"
	"github.com/fogmite/rolodex/internal/coop"
	"github.com/fogmite/rolodex/internal/pool"
)

const (
	// maintainChunk bounds per-tick work: the grow/trim loops yield after
	// this many rows so a long scroll jump cannot monopolise the scheduler.
	maintainChunk = 7
	// resetChunk bounds the bulk release loop during a full reset.
	resetChunk = 30
)

// Controller maintains the sliding window of materialised rows over the
// current record list.
type Controller struct {
	geo  Geometry
	bind Binder

	pool    *pool.Pool[*Row]
	content *pool.Container

	records []contact.Contact
	spawned []*Row
	top     int
	bottom  int

	updating  bool
	canRender bool
}

// New returns a controller with an empty record list and rendering disabled.
// Call Reset with the initial record list to enable it. A nil binder uses
// DefaultBinder.
func New(geo Geometry, bind Binder) *Controller {
	if bind == nil {
		bind = DefaultBinder
	}
	return &Controller{
		geo:     geo,
		bind:    bind,
		pool:    pool.New("row-pool", func() *Row { return &Row{Index: -1} }),
		content: pool.NewContainer("content"),
		top:     -1,
		bottom:  -1,
	}
}

// Geometry returns the session geometry.
func (c *Controller) Geometry() Geometry { return c.geo }

// CanRender reports whether per-tick updates are enabled.
func (c *Controller) CanRender() bool { return c.canRender }

// Top returns the record index of the first spawned row, or -1.
func (c *Controller) Top() int { return c.top }

// Bottom returns the record index of the last spawned row, or -1.
func (c *Controller) Bottom() int { return c.bottom }

// Rows returns the spawned rows, ordered top to bottom. The slice is a copy;
// the rows themselves are live and must not be mutated by callers.
func (c *Controller) Rows() []*Row {
	out := make([]*Row, len(c.spawned))
	copy(out, c.spawned)
	return out
}

// SpawnedCount returns the number of currently materialised rows.
func (c *Controller) SpawnedCount() int { return len(c.spawned) }

// PoolSize returns the number of rows parked in the recycle pool.
func (c *Controller) PoolSize() int { return c.pool.Size() }

// RecordCount returns the size of the current record list.
func (c *Controller) RecordCount() int { return len(c.records) }

// Suspend disables per-tick updates until the next Reset completes. The
// host calls this before fetching a new result set so no tick runs against
// the outgoing window.
func (c *Controller) Suspend() { c.canRender = false }

// Reset replaces the record list. Every spawned row is released back to the
// pool first, yielding after every 30 releases, then the window is cleared
// and the new list installed. Rendering is disabled for the duration and
// re-enabled on completion.
func (c *Controller) Reset(records []contact.Contact, yield func()) {
	c.canRender = false

	step := coop.Every(resetChunk, yield)
	for len(c.spawned) > 0 {
		c.release(len(c.spawned) - 1)
		step()
	}
	c.top, c.bottom = -1, -1

	c.records = contact.Clone(records)
	c.canRender = true
}

// Tick runs one window update against the given scroll offset. It is a
// no-op while rendering is disabled, while a previous tick is still in
// flight, or when the record list is empty. Top and bottom maintenance both
// complete before the tick returns.
func (c *Controller) Tick(offset int, yield func()) {
	if !c.canRender || c.updating {
		return
	}
	c.updating = true
	defer func() { c.updating = false }()

	if c.top == -1 {
		if len(c.records) == 0 {
			return
		}
		c.spawn(0, false)
		c.top, c.bottom = 0, 0
	}

	// A jump larger than the window leaves every spawned row outside the
	// band, and contiguous growth could never catch up. Reseat the window
	// on the record under the new offset instead of shrinking to nothing.
	if c.detached(offset) {
		c.recenter(offset, yield)
	}

	// Both trims run before either growth so every row released this tick
	// is back in the pool by the time growth acquires. Growing a side first
	// would allocate a fresh row on a scroll reversal even though the other
	// side was about to release one.
	trimmedTop := c.trimTop(offset, yield)
	trimmedBottom := c.trimBottom(offset, yield)
	if !trimmedTop {
		c.growTop(offset, yield)
	}
	if !trimmedBottom {
		c.growBottom(offset, yield)
	}
}

// detached reports whether the whole window sits outside the spawnable
// band, above it or below it.
func (c *Controller) detached(offset int) bool {
	return c.geo.RowY(c.bottom)-offset < c.geo.SpawnableTop() ||
		c.geo.RowY(c.top)-offset > c.geo.SpawnableBottom()
}

// recenter releases every spawned row and seeds a single row at the record
// under the current offset, from which both maintenance passes regrow.
func (c *Controller) recenter(offset int, yield func()) {
	step := coop.Every(maintainChunk, yield)
	for len(c.spawned) > 0 {
		c.release(len(c.spawned) - 1)
		step()
	}

	i := offset / c.geo.Step()
	if i > len(c.records)-1 {
		i = len(c.records) - 1
	}
	if i < 0 {
		i = 0
	}
	c.spawn(i, false)
	c.top, c.bottom = i, i
}

// trimTop releases rows that scrolled out above the band and reports
// whether it released anything. A side that trimmed does not also grow
// within the same tick.
func (c *Controller) trimTop(offset int, yield func()) bool {
	step := coop.Every(maintainChunk, yield)

	trimmed := false
	for len(c.spawned) > 1 && !c.fits(c.top, offset) {
		c.release(0)
		c.top++
		trimmed = true
		step()
	}
	return trimmed
}

// growTop spawns upward while the slot above the window is inside the
// spawnable band.
func (c *Controller) growTop(offset int, yield func()) {
	step := coop.Every(maintainChunk, yield)

	for c.top > 0 && c.fits(c.top-1, offset) {
		c.spawn(c.top-1, true)
		c.top--
		step()
	}
}

// trimBottom mirrors trimTop for the lower edge.
func (c *Controller) trimBottom(offset int, yield func()) bool {
	step := coop.Every(maintainChunk, yield)

	trimmed := false
	for len(c.spawned) > 1 && !c.fits(c.bottom, offset) {
		c.release(len(c.spawned) - 1)
		c.bottom--
		trimmed = true
		step()
	}
	return trimmed
}

// growBottom spawns downward toward increasing record indices.
func (c *Controller) growBottom(offset int, yield func()) {
	step := coop.Every(maintainChunk, yield)

	for c.bottom+1 < len(c.records) && c.fits(c.bottom+1, offset) {
		c.spawn(c.bottom+1, false)
		c.bottom++
		step()
	}
}

// fits reports whether record index i is inside the spawnable band once the
// scroll offset is applied.
func (c *Controller) fits(i, offset int) bool {
	return c.geo.Fits(c.geo.RowY(i) - offset)
}

// spawn acquires a row for record index i, positions it and binds the
// record. prepend controls which end of the window it joins.
func (c *Controller) spawn(i int, prepend bool) {
	r := c.pool.Acquire(c.content)
	r.Index = i
	r.Y = c.geo.RowY(i)
	r.Contact = c.records[i]
	c.bind(r, c.records[i])
	if prepend {
		c.spawned = append([]*Row{r}, c.spawned...)
	} else {
		c.spawned = append(c.spawned, r)
	}
}

// release returns the spawned row at position pos to the pool and removes it
// from the window.
func (c *Controller) release(pos int) {
	r := c.spawned[pos]
	c.spawned = append(c.spawned[:pos], c.spawned[pos+1:]...)
	c.pool.Release(c.content, r)
}
