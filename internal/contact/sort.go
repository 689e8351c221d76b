package contact

import (
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the field used to order contacts.
type SortKey int

const (
	SortByName SortKey = iota
	SortByPhone
	SortByEmail
)

// SortKeys lists every sort key in cycle order.
var SortKeys = []SortKey{SortByName, SortByPhone, SortByEmail}

// String returns the display label of the key.
func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "Name"
	case SortByPhone:
		return "Phone"
	case SortByEmail:
		return "Email"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// Next returns the key after k in cycle order, wrapping to SortByName.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// ParseSortKey parses "name", "phone" or "email", ignoring case and
// surrounding space.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName, nil
	case "phone":
		return SortByPhone, nil
	case "email":
		return SortByEmail, nil
	default:
		return 0, fmt.Errorf("contact: unknown sort key %q (want name, phone or email)", s)
	}
}

// sortField extracts the comparison value for key.
// Phone compares as a literal string, not as a number.
func sortField(c Contact, key SortKey) string {
	switch key {
	case SortByPhone:
		return c.Phone
	case SortByEmail:
		return strings.ToLower(c.Email)
	default:
		return strings.ToLower(c.Name)
	}
}

// SortContacts returns a stably sorted copy of cs. The input is not modified.
func SortContacts(cs []Contact, key SortKey) []Contact {
	out := slices.Clone(cs)
	if out == nil {
		out = []Contact{}
	}
	slices.SortStableFunc(out, func(a, b Contact) int {
		return strings.Compare(sortField(a, key), sortField(b, key))
	})
	return out
}

// FilterContacts returns the contacts whose name, phone or email contains
// query, ignoring case. An empty or blank query returns a copy of cs.
// The result is never nil.
func FilterContacts(cs []Contact, query string) []Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := slices.Clone(cs)
		if out == nil {
			out = []Contact{}
		}
		return out
	}

	out := []Contact{}
	for _, c := range cs {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out
}
