package ui

import (
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/contact"
)

// confirmState holds the contact pending deletion.
type confirmState struct {
	target contact.Contact
}

// View renders the confirmation screen.
func (cs confirmState) View() string {
	var b strings.Builder
	b.WriteString(titleText.Render("Confirm Deletion"))
	fmt.Fprintf(&b, "\n\n%s\n", msgConfirmDelete)
	fmt.Fprintf(&b, "\n  %s\n", cs.target.Name)
	fmt.Fprintf(&b, "  %s\n", cs.target.Phone)
	if cs.target.Email != "" {
		fmt.Fprintf(&b, "  %s\n", cs.target.Email)
	}
	b.WriteString("\n  [Y] Delete   [N] Cancel")
	return b.String()
}
