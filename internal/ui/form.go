package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/contact"
)

// Form field indexes.
const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name:", "Phone:", "Email:"}

// formState holds the add/edit form. editing is the zero ID when adding.
type formState struct {
	inputs  [fieldCount]textinput.Model
	focused int
	editing contact.ID
	err     string
}

// newAddForm returns an empty form focused on the name field.
func newAddForm() (formState, tea.Cmd) {
	fs := formState{}
	placeholders := [fieldCount]string{"Alice Smith", "123-456-7890", "alice@example.com"}
	for i := range fs.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		fs.inputs[i] = ti
	}
	return fs, fs.inputs[fieldName].Focus()
}

// newEditForm returns a form pre-populated from c.
func newEditForm(c contact.Contact) (formState, tea.Cmd) {
	fs, cmd := newAddForm()
	fs.editing = c.ID
	fs.inputs[fieldName].SetValue(c.Name)
	fs.inputs[fieldPhone].SetValue(c.Phone)
	fs.inputs[fieldEmail].SetValue(c.Email)
	return fs, cmd
}

func (fs formState) isEdit() bool {
	return fs.editing != contact.ID{}
}

// values returns the raw name, phone and email inputs.
func (fs formState) values() (name, phone, email string) {
	return fs.inputs[fieldName].Value(), fs.inputs[fieldPhone].Value(), fs.inputs[fieldEmail].Value()
}

// Update handles field navigation and text entry. Submit and cancel are
// handled by the owning Model.
func (fs formState) Update(msg tea.Msg) (formState, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		fs.inputs[fs.focused], cmd = fs.inputs[fs.focused].Update(msg)
		return fs, cmd
	}

	keys := FormKeyMap()
	switch {
	case key.Matches(km, keys.Next):
		return fs.focus((fs.focused + 1) % fieldCount)

	case key.Matches(km, keys.Prev):
		return fs.focus((fs.focused + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	fs.inputs[fs.focused], cmd = fs.inputs[fs.focused].Update(msg)
	return fs, cmd
}

// focus moves keyboard focus to field i.
func (fs formState) focus(i int) (formState, tea.Cmd) {
	fs.inputs[fs.focused].Blur()
	fs.focused = i
	return fs, fs.inputs[i].Focus()
}

// View renders the form.
func (fs formState) View() string {
	var b strings.Builder
	if fs.isEdit() {
		b.WriteString(titleText.Render("Edit Contact"))
	} else {
		b.WriteString(titleText.Render("Add New Contact"))
	}
	b.WriteString("\n\n")
	for i, in := range fs.inputs {
		b.WriteString(labelText.Render(fieldLabels[i]))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if fs.err != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle(StatusWarning).Render(fs.err))
	}
	b.WriteString("\n\n  [Enter] Save   [Esc] Cancel")
	return b.String()
}
