package contact

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContact_String(t *testing.T) {
	c := Contact{Name: "Alice Smith", Phone: "123-456-7890", Email: "alice@example.com"}
	want := "Alice Smith | 123-456-7890 | alice@example.com"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNew_AssignsDistinctIDs(t *testing.T) {
	a, err := New("A", "1", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("A", "1", "")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("New() returned the same ID twice")
	}
}

func TestValidationError_Message(t *testing.T) {
	_, err := New("", "1", "")
	if err == nil {
		t.Fatal("New() with empty name should fail")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error %q should name the field", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("validation error should not match ErrNotFound")
	}
}

func TestSamples(t *testing.T) {
	got := names(Samples())
	want := []string{"Alice Smith", "Bob Johnson", "Charlie Brown", "David Lee"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Samples() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{in: "name", want: SortByName},
		{in: "Phone", want: SortByPhone},
		{in: " EMAIL ", want: SortByEmail},
		{in: "birthday", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSortKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortKey_NextCycles(t *testing.T) {
	k := SortByName
	var seen []string
	for range 4 {
		seen = append(seen, k.String())
		k = k.Next()
	}
	want := []string{"Name", "Phone", "Email", "Name"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("Next() cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestSortContacts_DoesNotModifyInput(t *testing.T) {
	in := []Contact{{Name: "b"}, {Name: "a"}}
	_ = SortContacts(in, SortByName)
	if in[0].Name != "b" {
		t.Error("SortContacts modified its input")
	}
}

func TestFilterContacts_NilInput(t *testing.T) {
	if got := FilterContacts(nil, ""); got == nil || len(got) != 0 {
		t.Errorf("FilterContacts(nil, \"\") = %#v, want empty non-nil", got)
	}
	if got := SortContacts(nil, SortByEmail); got == nil {
		t.Error("SortContacts(nil) returned nil")
	}
}
