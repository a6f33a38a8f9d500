package model

import "testing"

func TestItemStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status ItemStatus
		want   bool
	}{
		{ItemStatusOpen, false},
		{ItemStatusClaimed, true},
		{ItemStatusReturned, true},
		{ItemStatusArchived, true},
		{ItemStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("IsTerminal(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
