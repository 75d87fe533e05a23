package swr

import "iter"

// MaxSegmentPoints is the largest number of points an iterator reports for
// one verb.
const MaxSegmentPoints = 4

// Iter walks a path and reports every verb that was entered.
//
//	it := swr.NewIter(path)
//	var pts [swr.MaxSegmentPoints]swr.Point
//	for v := it.Next(&pts); v != swr.VerbDone; v = it.Next(&pts) {
//	    // use pts[:v.PointCount()]
//	}
type Iter struct {
	path *Path
	verb int
	pt   int
}

// NewIter returns an iterator positioned at the first verb of p.
func NewIter(p *Path) *Iter {
	return &Iter{path: p}
}

// Next stores the points of the next verb in pts and returns the verb, or
// VerbDone when the path is exhausted. A move reports its point; segments
// report their starting point followed by the stored points.
func (it *Iter) Next(pts *[MaxSegmentPoints]Point) Verb {
	if it.verb >= len(it.path.verbs) {
		return VerbDone
	}
	v := it.path.verbs[it.verb]
	it.verb++

	n := v.stored()
	if v == VerbMove {
		pts[0] = it.path.pts[it.pt]
	} else {
		pts[0] = it.path.pts[it.pt-1]
		copy(pts[1:], it.path.pts[it.pt:it.pt+n])
	}
	it.pt += n
	return v
}

// Edger walks a path and reports only segments. It never reports VerbMove;
// instead, at the end of every contour that has at least one segment, it
// reports a closing line from the last point back to the contour's start.
// The closing line is reported even when it has zero length.
type Edger struct {
	it      Iter
	start   Point
	last    Point
	pending bool // the current contour has segments and needs closing
}

// NewEdger returns an edge iterator over p.
func NewEdger(p *Path) *Edger {
	return &Edger{it: Iter{path: p}}
}

// Next stores the points of the next segment in pts and returns its verb,
// or VerbDone when the path is exhausted.
func (e *Edger) Next(pts *[MaxSegmentPoints]Point) Verb {
	for {
		var buf [MaxSegmentPoints]Point
		v := e.it.Next(&buf)
		switch v {
		case VerbDone:
			if e.pending {
				return e.close(pts)
			}
			return VerbDone
		case VerbMove:
			if e.pending {
				// Closing line first; the move is replayed on the next call.
				e.it.verb--
				e.it.pt--
				return e.close(pts)
			}
			e.start = buf[0]
			e.last = buf[0]
		default:
			n := v.PointCount()
			copy(pts[:], buf[:n])
			e.last = buf[n-1]
			e.pending = true
			return v
		}
	}
}

func (e *Edger) close(pts *[MaxSegmentPoints]Point) Verb {
	pts[0] = e.last
	pts[1] = e.start
	e.pending = false
	return VerbLine
}

// Segment is one verb and its points as reported by an iterator.
type Segment struct {
	Verb   Verb
	Points [MaxSegmentPoints]Point
}

// Pts returns the meaningful points of the segment.
func (s Segment) Pts() []Point {
	return s.Points[:s.Verb.PointCount()]
}

// All returns a range iterator over every verb of the path.
func (p *Path) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		it := NewIter(p)
		for {
			var s Segment
			if s.Verb = it.Next(&s.Points); s.Verb == VerbDone {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Edges returns a range iterator over the segments of the path, including
// the synthesized closing lines. See [Edger].
func (p *Path) Edges() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		e := NewEdger(p)
		for {
			var s Segment
			if s.Verb = e.Next(&s.Points); s.Verb == VerbDone {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}
