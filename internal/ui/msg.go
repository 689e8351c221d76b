// Package ui implements the interactive contact manager TUI: a two-pane
// layout with the contact list on the left and detail, forms and prompts
// on the right. All contact data lives in a contact.Store; the model only
// keeps the derived display order and the current selection.
package ui

// Mode represents the current view mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Browsing the list with the detail pane.
	ModeForm                // Adding or editing a contact.
	ModeSearch              // Typing a search query.
	ModeConfirm             // Confirming a deletion.
)

// Focus represents which pane has keyboard focus in browse mode.
type Focus int

const (
	PaneLeft  Focus = iota // Contact list has focus.
	PaneRight              // Detail viewport has focus.
)

// StatusKind classifies the status line message.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusSuccess
	StatusWarning
	StatusError
)

// Status is the one-line feedback shown after a user action.
type Status struct {
	Kind StatusKind
	Text string
}

// User-facing messages.
const (
	msgAdded          = "Contact added successfully!"
	msgUpdated        = "Contact updated successfully!"
	msgDeleted        = "Contact deleted."
	msgSelectToEdit   = "Please select a contact to edit."
	msgSelectToDelete = "Please select a contact to delete."
	msgEditNotFound   = "Could not find selected contact for editing."
	msgDeleteNotFound = "Could not find selected contact to delete."
	msgConfirmDelete  = "Are you sure you want to delete the selected contact?"
	msgEmptyList      = "No contacts to display."
	msgNoMatchFormat  = "No contacts found matching '%s'."
)
