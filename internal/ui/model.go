package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fogmite/rolodex/internal/config"
	"github.com/fogmite/rolodex/internal/contact"
	"github.com/fogmite/rolodex/internal/coop"
	"github.com/fogmite/rolodex/internal/store"
	"github.com/fogmite/rolodex/internal/window"
)

// tickInterval is the render tick cadence driving the window controller.
const tickInterval = 80 * time.Millisecond

// chromeLines is the vertical space taken by the header and footer.
const chromeLines = 2

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeAdd
)

type (
	tickMsg   time.Time
	loadedMsg struct {
		contacts []contact.Contact
	}
	resultsMsg struct {
		query    string
		contacts []contact.Contact
		total    int
	}
	mutatedMsg struct {
		contacts []contact.Contact
		flash    string
		total    int
	}
)

// rowView is the render-side copy of one spawned row. View runs on the
// bubbletea event loop while the controller's rows are mutated by scheduler
// tasks on command goroutines, so rendering never touches live rows: each
// tick copies the window into these plain values inside the scheduled task.
type rowView struct {
	index int
	y     int
	label string
	phone string
}

// Model is the bubbletea model hosting the virtualized contact list.
type Model struct {
	store *store.Store
	sched *coop.Scheduler
	cfg   config.Config
	log   *slog.Logger

	keys   keyMap
	styles styles
	input  textinput.Model

	ctrl *window.Controller

	width  int
	height int

	// offset is the content scroll offset in cells; cursor is the record
	// index of the current selection within records.
	offset  int
	cursor  int
	records []contact.Contact
	query   string

	// rows and total are the snapshot View renders from, refreshed on
	// every tick; they are the only row data the event loop reads.
	rows  []rowView
	total int

	mode   mode
	loaded bool
	flash  string
}

func newModel(opts Options) Model {
	input := textinput.New()
	input.CharLimit = 128
	input.Width = 40

	return Model{
		store:  opts.Store,
		sched:  opts.Sched,
		cfg:    opts.Config,
		log:    opts.Logger,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
		input:  input,
	}
}

// Init kicks off the backing-store load and the render tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.tickCmd(), textinput.Blink)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadCmd runs the store load on the cooperative scheduler and reports the
// initial collection.
func (m Model) loadCmd() tea.Cmd {
	st, sched := m.store, m.sched
	return func() tea.Msg {
		var all []contact.Contact
		sched.Run(func(yield func()) {
			st.Load()
			all, _ = st.All()
		})
		return loadedMsg{contacts: all}
	}
}

// searchCmd runs the chunked search and the window full-reset protocol as a
// single cooperative task. Overlapping searches are not cancelled; whichever
// message lands last wins.
func (m Model) searchCmd(query string) tea.Cmd {
	st, sched, ctrl := m.store, m.sched, m.ctrl
	logger := m.log
	return func() tea.Msg {
		var results []contact.Contact
		var total int
		sched.Run(func(yield func()) {
			ctrl.Suspend()
			r, err := st.Search(query, yield)
			if err != nil {
				logger.Warn("search rejected", "query", query, "error", err)
			}
			results = r
			ctrl.Reset(results, yield)
			total = st.Len()
		})
		return resultsMsg{query: query, contacts: results, total: total}
	}
}

// mutateCmd applies fn to the store, refetches the record set under the
// active query and resets the window to it.
func (m Model) mutateCmd(fn func() error, flash string) tea.Cmd {
	st, sched, ctrl := m.store, m.sched, m.ctrl
	query, logger := m.query, m.log
	return func() tea.Msg {
		var results []contact.Contact
		var total int
		sched.Run(func(yield func()) {
			ctrl.Suspend()
			if err := fn(); err != nil {
				logger.Warn("mutation rejected", "error", err)
				flash = err.Error()
			}
			if query != "" {
				results, _ = st.Search(query, yield)
			} else {
				results, _ = st.All()
			}
			ctrl.Reset(results, yield)
			total = st.Len()
		})
		return mutatedMsg{contacts: results, flash: flash, total: total}
	}
}

// resetCmd installs records as the window's record list.
func (m Model) resetCmd(records []contact.Contact) tea.Cmd {
	sched, ctrl := m.sched, m.ctrl
	return func() tea.Msg {
		sched.Run(func(yield func()) {
			ctrl.Reset(records, yield)
		})
		return nil
	}
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		if m.ctrl != nil && m.loaded {
			ctrl, sched, st, offset := m.ctrl, m.sched, m.store, m.offset
			var rows []rowView
			var total int
			sched.Run(func(yield func()) {
				ctrl.Tick(offset, yield)
				rows = snapshotRows(ctrl)
				total = st.Len()
			})
			m.rows, m.total = rows, total
		}
		return m, m.tickCmd()

	case loadedMsg:
		m.loaded = true
		m.records = msg.contacts
		m.total = len(msg.contacts)
		m.flash = fmt.Sprintf("%d contacts", len(msg.contacts))
		if m.ctrl != nil {
			return m, m.resetCmd(m.records)
		}
		return m, nil

	case resultsMsg:
		m.query = msg.query
		m.records = msg.contacts
		m.total = msg.total
		m.rows = nil
		m.cursor, m.offset = 0, 0
		if msg.query == "" {
			m.flash = fmt.Sprintf("%d contacts", len(msg.contacts))
		} else {
			m.flash = fmt.Sprintf("%d matching %q", len(msg.contacts), msg.query)
		}
		return m, nil

	case mutatedMsg:
		m.records = msg.contacts
		m.total = msg.total
		m.rows = nil
		m.flash = msg.flash
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height

	viewport := msg.Height - chromeLines
	geo := window.Measure(m.cfg.RowHeight, m.cfg.RowGap, viewport, m.cfg.Overscan)

	// Geometry is fixed per controller; a resize starts a fresh window
	// (and a fresh pool) sized to the new viewport.
	m.ctrl = window.New(geo, nil)
	m.offset, m.cursor = 0, 0
	if m.loaded {
		return m, m.resetCmd(m.records)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch, modeAdd:
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.visibleRows())
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.followCursor()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.records) - 1
		m.clampCursor()
		m.followCursor()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.Placeholder = "name"
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Placeholder = "First Last 555-0100"
		m.input.SetValue("")
		m.input.Focus()

	case key.Matches(msg, m.keys.Delete):
		if m.ctrl != nil && m.cursor < len(m.records) {
			victim := m.records[m.cursor]
			st := m.store
			return m, m.mutateCmd(func() error {
				return st.Remove(victim)
			}, "removed "+victim.DisplayName())
		}

	case key.Matches(msg, m.keys.Escape):
		if m.query != "" && m.ctrl != nil {
			return m, m.searchCmd("")
		}
	}

	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// "q" must stay typable inside a prompt, so only ctrl+c quits here.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		submitted := m.mode
		m.mode = modeBrowse
		m.input.Blur()

		if m.ctrl == nil {
			return m, nil
		}
		if submitted == modeSearch {
			return m, m.searchCmd(value)
		}
		c, err := parseContact(value)
		if err != nil {
			m.flash = err.Error()
			return m, nil
		}
		st := m.store
		return m, m.mutateCmd(func() error {
			return st.Add(c)
		}, "added "+c.DisplayName())

	case key.Matches(msg, m.keys.Escape):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveCursor shifts the selection and scrolls the content offset so the
// selection stays inside the visible viewport.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.followCursor()
}

func (m *Model) clampCursor() {
	if m.cursor > len(m.records)-1 {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// followCursor adjusts the scroll offset so the cursor row is fully inside
// the visible viewport, scrolling by whole steps.
func (m *Model) followCursor() {
	if m.ctrl == nil {
		return
	}
	geo := m.ctrl.Geometry()
	y := geo.RowY(m.cursor)
	if y < m.offset {
		m.offset = y
	}
	if limit := y + geo.RowHeight - geo.ViewportHeight; limit > m.offset {
		m.offset = limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRows is how many whole rows fit in the viewport.
func (m Model) visibleRows() int {
	if m.ctrl == nil {
		return 1
	}
	geo := m.ctrl.Geometry()
	rows := geo.ViewportHeight / geo.Step()
	if rows < 1 {
		rows = 1
	}
	return rows
}

// snapshotRows copies the controller's spawned rows into render values.
// Must run inside a scheduler task, like every other controller access.
func snapshotRows(ctrl *window.Controller) []rowView {
	live := ctrl.Rows()
	rows := make([]rowView, 0, len(live))
	for _, r := range live {
		rows = append(rows, rowView{
			index: r.Index,
			y:     r.Y,
			label: r.Label,
			phone: r.Contact.Phone,
		})
	}
	return rows
}

func parseContact(value string) (contact.Contact, error) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return contact.Contact{}, fmt.Errorf("expected: First Last phone")
	}
	c := contact.Contact{FirstName: fields[0], LastName: fields[1]}
	if len(fields) > 2 {
		c.Phone = strings.Join(fields[2:], " ")
	}
	return c, nil
}
