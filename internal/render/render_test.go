package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/rolodex/internal/contact"
)

func TestNewPrinter_NonTTYIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(Options{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*PlainPrinter); !ok {
		t.Errorf("NewPrinter(non-TTY) = %T, want *PlainPrinter", p)
	}
}

func TestNewPrinter_UnknownFormat(t *testing.T) {
	_, err := NewPrinter(Options{Writer: &bytes.Buffer{}, Format: "csv"})
	if err == nil {
		t.Fatal("NewPrinter(csv) should fail")
	}
}

func TestPlainPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	p := &PlainPrinter{w: &buf}

	if err := p.Print(contact.Samples()[:2]); err != nil {
		t.Fatal(err)
	}

	want := "Alice Smith | 123-456-7890 | alice@example.com\n" +
		"Bob Johnson | 098-765-4321 | bob@example.com\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("plain output mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainPrinter_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := &PlainPrinter{w: &buf}

	if err := p.Print(nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != EmptyMessage {
		t.Errorf("empty output = %q, want %q", got, EmptyMessage)
	}
}

func TestTablePrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	p := &TablePrinter{w: &buf}

	if err := p.Print(contact.Samples()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"NAME", "PHONE", "EMAIL", "Charlie Brown", "555-123-4567", "david@example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Errorf("table lines = %d, want 5 (header + 4 rows)", lines)
	}
}

func TestJSONPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(Options{Writer: &buf, Format: FormatJSON})
	if err != nil {
		t.Fatal(err)
	}
	samples := contact.Samples()

	if err := p.Print(samples); err != nil {
		t.Fatal(err)
	}

	var got []contact.Contact
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(samples, got); diff != "" {
		t.Errorf("json output mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONPrinter_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	p := &JSONPrinter{w: &buf}
	if err := p.Print(nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty json = %q, want []", got)
	}
}

func TestYAMLPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(Options{Writer: &buf, Format: FormatYAML})
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Print(contact.Samples()[:1]); err != nil {
		t.Fatal(err)
	}

	var got []map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	if got[0]["name"] != "Alice Smith" || got[0]["email"] != "alice@example.com" {
		t.Errorf("yaml entry = %v", got[0])
	}
	if got[0]["id"] == "" {
		t.Error("yaml entry should carry the id")
	}
}
