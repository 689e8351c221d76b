package contact

import (
	"fmt"
	"slices"
)

// Store is the authoritative, in-memory contact list. It keeps contacts in
// insertion order and indexes them by ID.
//
// Store is not safe for concurrent use.
type Store struct {
	index    map[ID]int
	contacts []Contact
}

// NewStore creates a Store holding the given contacts in order. Each seed is
// re-validated and receives a fresh ID.
func NewStore(seed ...Contact) (*Store, error) {
	s := &Store{index: make(map[ID]int, len(seed))}
	for _, c := range seed {
		if _, err := s.Add(c.Name, c.Phone, c.Email); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewSampleStore creates a Store holding the demonstration contacts.
func NewSampleStore() *Store {
	s, err := NewStore(Samples()...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add validates and appends a new contact, returning the stored copy.
// Duplicates are allowed. The zero Store is ready to use.
func (s *Store) Add(name, phone, email string) (Contact, error) {
	c, err := New(name, phone, email)
	if err != nil {
		return Contact{}, err
	}
	if s.index == nil {
		s.index = make(map[ID]int)
	}
	for {
		if _, taken := s.index[c.ID]; !taken {
			break
		}
		c, _ = New(c.Name, c.Phone, c.Email)
	}
	s.index[c.ID] = len(s.contacts)
	s.contacts = append(s.contacts, c)
	return c, nil
}

// Get returns the contact with the given ID.
func (s *Store) Get(id ID) (Contact, error) {
	i, ok := s.index[id]
	if !ok {
		return Contact{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.contacts[i], nil
}

// Update replaces the fields of an existing contact. All fields are
// validated before any is written, so a failed update leaves the contact
// unchanged. The contact keeps its ID and position.
func (s *Store) Update(id ID, name, phone, email string) (Contact, error) {
	i, ok := s.index[id]
	if !ok {
		return Contact{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	f, err := validate(name, phone, email)
	if err != nil {
		return Contact{}, err
	}
	c := &s.contacts[i]
	c.Name, c.Phone, c.Email = f.name, f.phone, f.email
	return *c, nil
}

// Remove deletes the contact with the given ID.
func (s *Store) Remove(id ID) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.index, id)
	s.contacts = slices.Delete(s.contacts, i, i+1)
	for j := i; j < len(s.contacts); j++ {
		s.index[s.contacts[j].ID] = j
	}
	return nil
}

// All returns a snapshot of every contact in insertion order.
func (s *Store) All() []Contact {
	out := slices.Clone(s.contacts)
	if out == nil {
		out = []Contact{}
	}
	return out
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// Search returns contacts matching query in insertion order.
// See FilterContacts for the matching rules.
func (s *Store) Search(query string) []Contact {
	return FilterContacts(s.contacts, query)
}

// Sorted returns a sorted snapshot. Insertion order is left untouched.
func (s *Store) Sorted(key SortKey) []Contact {
	return SortContacts(s.contacts, key)
}
