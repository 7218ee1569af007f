package domain

const (
	// PageSize is the initial visible row count and the growth step
	PageSize = 50

	// DefaultScrollThreshold is the distance from the bottom, in pixels,
	// at which the next page is revealed
	DefaultScrollThreshold = 500
)

// ScrollMetrics describes a scroll position in any consistent unit
// (pixels for a browser, rows for a terminal).
type ScrollMetrics struct {
	Offset   int // distance scrolled from the top
	Viewport int // visible height
	Content  int // total document height
}

// NearBottom reports whether the viewport's bottom edge is within threshold of the end
func (s ScrollMetrics) NearBottom(threshold int) bool {
	return s.Offset+s.Viewport >= s.Content-threshold
}

// GrowWindow returns the visible count after one reveal step, capped at total
func GrowWindow(visible, step, total int) int {
	next := visible + step
	if next > total {
		next = total
	}
	return next
}
