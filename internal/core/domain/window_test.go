package domain

import "testing"

func TestScrollMetrics_NearBottom(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ScrollMetrics
		expected bool
	}{
		{"top of a long page", ScrollMetrics{Offset: 0, Viewport: 800, Content: 5000}, false},
		{"exactly at threshold", ScrollMetrics{Offset: 3700, Viewport: 800, Content: 5000}, true},
		{"one pixel short", ScrollMetrics{Offset: 3699, Viewport: 800, Content: 5000}, false},
		{"short page", ScrollMetrics{Offset: 0, Viewport: 800, Content: 900}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.NearBottom(DefaultScrollThreshold); got != tt.expected {
				t.Errorf("NearBottom() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestGrowWindow(t *testing.T) {
	tests := []struct {
		visible, total, expected int
	}{
		{50, 120, 100},
		{100, 120, 120},
		{120, 120, 120},
		{50, 30, 30},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := GrowWindow(tt.visible, PageSize, tt.total); got != tt.expected {
			t.Errorf("GrowWindow(%d, %d, %d) = %d, expected %d", tt.visible, PageSize, tt.total, got, tt.expected)
		}
	}
}
