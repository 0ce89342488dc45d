// Package ui provides the terminal front end for the rolodex browser.
//
// # Architecture Overview
//
// The package is a bubbletea program wrapped around the window controller.
// It plays three of the roles the core treats as external collaborators:
//
//   - Render-tick driver: a tea.Tick message every 80ms runs one window
//     controller update with the current scroll offset.
//   - Input surface: key bindings move the selection, open the search and
//     add prompts and delete the selected contact.
//   - View binder: the default binder paints each row's display name; the
//     view layer adds the phone number and selection highlight.
//
// # Package Structure
//
//   - ui.go: Options and the blocking Run function
//   - model.go: bubbletea model, messages and command plumbing
//   - view.go: header, viewport and footer rendering
//   - keys.go: key bindings (bubbles/key)
//   - styles.go: lipgloss styles
//
// # Concurrency
//
// Every store or window operation runs on the shared cooperative scheduler,
// never directly on the bubbletea goroutine's own authority: render ticks
// execute synchronously under the scheduler's run token, while searches and
// mutations run inside tea commands that acquire the token and yield at
// their chunk boundaries. The token is what makes the system behave as a
// single logical thread.
//
// View is the one place that cannot take the token: bubbletea calls it on
// the event-loop goroutine while a command may hold the token and mutate
// the window. Each tick therefore copies the spawned rows and the contact
// count into plain model fields before releasing the token, and rendering
// reads only that snapshot.
//
// # Key Bindings
//
//   - j/k or arrows: move selection (viewport follows)
//   - pgup/pgdn, g/G: page and jump navigation
//   - /: search (case-insensitive substring on first or last name)
//   - a: add a contact ("First Last phone")
//   - d/x: delete the selected contact
//   - esc: dismiss prompt, or clear the active search
//   - q or Ctrl+C: quit
package ui
