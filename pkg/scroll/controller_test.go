package scroll

import (
	"math"
	"testing"
)

func TestMetrics_Position(t *testing.T) {
	tests := []struct {
		name      string
		m         Metrics
		wantIndex int
		wantRate  float64
		wantOK    bool
	}{
		{"origin", Metrics{Offset: 0, ItemWidth: 90, InteritemSpacing: 10}, 0, 0, true},
		{"one and a half", Metrics{Offset: 150, ItemWidth: 90, InteritemSpacing: 10}, 1, 0.5, true},
		{"exact page", Metrics{Offset: 300, ItemWidth: 90, InteritemSpacing: 10}, 3, 0, true},
		{"container fallback", Metrics{Offset: 50, ContainerWidth: 200}, 0, 0.25, true},
		{"negative overscroll", Metrics{Offset: -25, ItemWidth: 100}, -1, 0.75, true},
		{"zero width", Metrics{Offset: 10}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, rate, ok := tt.m.Position()
			if ok != tt.wantOK || index != tt.wantIndex || math.Abs(rate-tt.wantRate) > 1e-12 {
				t.Errorf("Position() = (%d, %v, %v), want (%d, %v, %v)",
					index, rate, ok, tt.wantIndex, tt.wantRate, tt.wantOK)
			}
		})
	}
}

func TestController_JumpToNotifiesAndClamps(t *testing.T) {
	c := NewController(90, 10, 90)
	c.SetPageCount(3)
	var reports []Metrics
	c.AddListener(func(m Metrics) { reports = append(reports, m) })

	c.JumpTo(150)
	c.JumpTo(150)
	c.JumpTo(1000)
	c.JumpTo(-5)

	if len(reports) != 3 {
		t.Fatalf("listener called %d times, want 3", len(reports))
	}
	if reports[1].Offset != 200 {
		t.Errorf("clamped offset = %v, want 200", reports[1].Offset)
	}
	if reports[2].Offset != 0 {
		t.Errorf("clamped offset = %v, want 0", reports[2].Offset)
	}
}

func TestController_NearestPage(t *testing.T) {
	c := NewController(0, 0, 100)
	c.SetPageCount(4)
	c.JumpTo(149)
	if got := c.NearestPage(); got != 1 {
		t.Errorf("NearestPage = %d, want 1", got)
	}
	c.JumpTo(151)
	if got := c.NearestPage(); got != 2 {
		t.Errorf("NearestPage = %d, want 2", got)
	}
	if got := c.PageOffset(3); got != 300 {
		t.Errorf("PageOffset(3) = %v, want 300", got)
	}
}

func TestController_SetMetricsIgnoresNoop(t *testing.T) {
	c := NewController(50, 5, 50)
	calls := 0
	remove := c.AddListener(func(Metrics) { calls++ })
	c.SetMetrics(50, 5, 50)
	c.SetMetrics(60, 5, 50)
	remove()
	c.SetMetrics(70, 5, 50)
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}
