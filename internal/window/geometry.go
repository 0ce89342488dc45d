package window

// Geometry fixes the vertical layout for a session: row height, the gap
// between rows, the viewport height and the overscan margin, all in terminal
// cells. It is computed once at initialisation from measured inputs and
// passed by value; nothing mutates it afterwards.
type Geometry struct {
	RowHeight      int
	RowGap         int
	ViewportHeight int
	Overscan       int
}

// Measure derives a Geometry from a template row and viewport measurement,
// clamping to sane minimums.
func Measure(rowHeight, rowGap, viewportHeight, overscan int) Geometry {
	if rowHeight < 1 {
		rowHeight = 1
	}
	if rowGap < 0 {
		rowGap = 0
	}
	if viewportHeight < rowHeight {
		viewportHeight = rowHeight
	}
	if overscan < 0 {
		overscan = 0
	}
	return Geometry{
		RowHeight:      rowHeight,
		RowGap:         rowGap,
		ViewportHeight: viewportHeight,
		Overscan:       overscan,
	}
}

// Step is the vertical distance between consecutive row origins.
func (g Geometry) Step() int { return g.RowHeight + g.RowGap }

// SpawnableTop is the upper bound of the spawnable band, in viewport-local
// cells with y growing downward. Rows may live up to Overscan steps above
// the visible edge.
func (g Geometry) SpawnableTop() int { return -g.Overscan * g.Step() }

// SpawnableBottom is the lower bound of the spawnable band: the viewport
// plus Overscan steps below it.
func (g Geometry) SpawnableBottom() int { return g.ViewportHeight + g.Overscan*g.Step() }

// Fits reports whether a row whose origin sits at screenY (content offset
// already applied) is inside the spawnable band. Both bounds are inclusive:
// a row exactly on the edge fits, which keeps edge rows from flickering
// between spawn and trim on successive ticks.
func (g Geometry) Fits(screenY int) bool {
	return screenY >= g.SpawnableTop() && screenY <= g.SpawnableBottom()
}

// RowY returns the content-local origin of record index i.
func (g Geometry) RowY(i int) int { return i * g.Step() }
