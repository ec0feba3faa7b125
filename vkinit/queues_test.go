package vkinit

import "testing"

func intPtr(v int) *int {
	return &v
}

func TestQueueFamilyIndicesIsComplete(t *testing.T) {
	tests := []struct {
		name     string
		indices  QueueFamilyIndices
		complete bool
	}{
		{"both missing", QueueFamilyIndices{}, false},
		{"graphics only", QueueFamilyIndices{GraphicsFamily: intPtr(0)}, false},
		{"present only", QueueFamilyIndices{PresentFamily: intPtr(0)}, false},
		{"both set", QueueFamilyIndices{GraphicsFamily: intPtr(0), PresentFamily: intPtr(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.indices.IsComplete(); got != tt.complete {
				t.Errorf("IsComplete() = %v, want %v", got, tt.complete)
			}
		})
	}
}

func TestQueueFamilyIndicesUnique(t *testing.T) {
	shared := QueueFamilyIndices{GraphicsFamily: intPtr(2), PresentFamily: intPtr(2)}
	if got := shared.Unique(); len(got) != 1 || got[0] != 2 {
		t.Errorf("shared family: Unique() = %v, want [2]", got)
	}

	split := QueueFamilyIndices{GraphicsFamily: intPtr(0), PresentFamily: intPtr(3)}
	got := split.Unique()
	if len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("split families: Unique() = %v, want [0 3]", got)
	}
}
