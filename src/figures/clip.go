package figures

import "math"

// window is a panel's visible rectangle in plotting space.
type window struct {
	x0, x1, y0, y1 float64
}

func (w window) contains(x, y float64) bool {
	return x >= w.x0 && x <= w.x1 && y >= w.y0 && y <= w.y1
}

func (w window) clampX(v float64) float64 { return math.Max(w.x0, math.Min(w.x1, v)) }
func (w window) clampY(v float64) float64 { return math.Max(w.y0, math.Min(w.y1, v)) }

// clipSegment returns the parameter interval [t0, t1] of a->b that lies inside w
// (Liang-Barsky).
func (w window) clipSegment(ax, ay, bx, by float64) (float64, float64, bool) {
	dx, dy := bx-ax, by-ay
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, ax - w.x0},
		{dx, w.x1 - ax},
		{-dy, ay - w.y0},
		{dy, w.y1 - ay},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return t0, t1, true
}

type run struct {
	xs, ys []float64
}

// clipPolyline splits a polyline into the runs that lie inside w. Crossing points are
// interpolated onto the window edge. It also reports how many input points fell outside.
func (w window) clipPolyline(xs, ys []float64) ([]run, int) {
	outside := 0
	for i := range xs {
		if !w.contains(xs[i], ys[i]) {
			outside++
		}
	}
	var runs []run
	open := false
	for i := 0; i+1 < len(xs); i++ {
		ax, ay, bx, by := xs[i], ys[i], xs[i+1], ys[i+1]
		if !finite(ax) || !finite(ay) || !finite(bx) || !finite(by) {
			open = false
			continue
		}
		t0, t1, ok := w.clipSegment(ax, ay, bx, by)
		if !ok {
			open = false
			continue
		}
		dx, dy := bx-ax, by-ay
		if !open || t0 > 0 {
			runs = append(runs, run{xs: []float64{ax + t0*dx}, ys: []float64{ay + t0*dy}})
		}
		cur := &runs[len(runs)-1]
		cur.xs = append(cur.xs, ax+t1*dx)
		cur.ys = append(cur.ys, ay+t1*dy)
		open = t1 >= 1
	}
	return runs, outside
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
