package models

import "testing"

func TestPriorityValid(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		want     bool
	}{
		{name: "low", priority: PriorityLow, want: true},
		{name: "medium", priority: PriorityMedium, want: true},
		{name: "high", priority: PriorityHigh, want: true},
		{name: "empty", priority: "", want: false},
		{name: "unknown", priority: "urgent", want: false},
		{name: "wrong case", priority: "Low", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.priority.Valid(); got != tt.want {
				t.Errorf("Priority(%q).Valid() = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}
