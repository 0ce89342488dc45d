package window

import "github.com/fogmite/rolodex/internal/contact"

// Row is a reusable visual row. It cycles between the content container
// (spawned, active) and the recycle pool's holding container (inactive).
type Row struct {
	active bool

	// Index is the record index this row currently represents.
	Index int
	// Y is the row's content-local vertical origin.
	Y int
	// Contact is the bound record.
	Contact contact.Contact
	// Label is the painted text, produced by the binder.
	Label string
}

// Activate marks the row live. Called by the pool on acquire.
func (r *Row) Activate() { r.active = true }

// Deactivate marks the row recycled and clears its binding so stale text
// never leaks into the next use.
func (r *Row) Deactivate() {
	r.active = false
	r.Index = -1
	r.Contact = contact.Contact{}
	r.Label = ""
}

// Active reports whether the row is currently spawned.
func (r *Row) Active() bool { return r.active }

// Binder paints a record's textual fields onto a row. It must be pure with
// respect to the record; the default binder just copies the display name.
type Binder func(*Row, contact.Contact)

// DefaultBinder writes "First Last" as the row label.
func DefaultBinder(r *Row, c contact.Contact) {
	r.Label = c.DisplayName()
}
