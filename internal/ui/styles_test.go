package ui

import "testing"

func TestPaneWidths(t *testing.T) {
	tests := []struct {
		total     int
		wantLeft  int
		wantRight int
	}{
		{total: 0, wantLeft: 0, wantRight: 0},
		{total: 40, wantLeft: MinLeftWidth, wantRight: 40 - MinLeftWidth},
		{total: 100, wantLeft: 50, wantRight: 50},
		{total: 121, wantLeft: 60, wantRight: 61},
	}
	for _, tt := range tests {
		left, right := PaneWidths(tt.total)
		if left != tt.wantLeft || right != tt.wantRight {
			t.Errorf("PaneWidths(%d) = (%d, %d), want (%d, %d)", tt.total, left, right, tt.wantLeft, tt.wantRight)
		}
	}
}

func TestStatusStyle_RendersText(t *testing.T) {
	for _, kind := range []StatusKind{StatusNone, StatusInfo, StatusSuccess, StatusWarning, StatusError} {
		if got := stripANSI(StatusStyle(kind).Render("saved")); got != "saved" {
			t.Errorf("StatusStyle(%d) rendered %q", kind, got)
		}
	}
}
