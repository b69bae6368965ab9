package geometry

import (
	gomath "math"
	"sort"

	"github.com/Faultbox/fragments-go/pkg/math"
)

// Ear clipping with hole bridging. The outer ring is expected counter-
// clockwise and holes clockwise; rings in the other orientation are linked
// reversed. Holes are merged into the outer ring through bridge edges, so the
// fill is equivalent to the odd/even rule for non-overlapping holes.
//
// Vertex indices in the output refer to the concatenation of all rings.

type earNode struct {
	i          int
	x, y       float64
	prev, next *earNode
	steiner    bool
}

// earcut triangulates rings[0] minus rings[1:].
func earcut(rings [][]math.Vec2) [][3]int {
	if len(rings) == 0 {
		return nil
	}

	base := 0
	outer := linkRing(rings[0], base, true)
	base += len(rings[0])
	if outer == nil || outer.next == outer.prev {
		return nil
	}

	if len(rings) > 1 {
		var holes []*earNode
		for _, ring := range rings[1:] {
			list := linkRing(ring, base, false)
			base += len(ring)
			if list == nil {
				continue
			}
			if list == list.next {
				list.steiner = true
			}
			holes = append(holes, leftmost(list))
		}
		sort.SliceStable(holes, func(a, b int) bool { return holes[a].x < holes[b].x })
		for _, h := range holes {
			outer = eliminateHole(h, outer)
		}
	}

	var tris [][3]int
	earcutLinked(outer, &tris, 0)
	return tris
}

// linkRing builds a circular list in the requested orientation.
func linkRing(ring []math.Vec2, base int, ccw bool) *earNode {
	var last *earNode
	if ccw == (math.SignedArea(ring) > 0) {
		for i, p := range ring {
			last = insertNode(base+i, p, last)
		}
	} else {
		for i := len(ring) - 1; i >= 0; i-- {
			last = insertNode(base+i, ring[i], last)
		}
	}
	if last != nil && samePoint(last, last.next) {
		removeNode(last)
		last = last.next
	}
	return last
}

func earcutLinked(ear *earNode, tris *[][3]int, pass int) {
	if ear == nil {
		return
	}
	stop := ear
	for ear.prev != ear.next {
		prev, next := ear.prev, ear.next

		if isEar(ear) {
			*tris = append(*tris, [3]int{prev.i, ear.i, next.i})
			removeNode(ear)
			ear = next.next
			stop = next.next
			continue
		}

		ear = next
		if ear == stop {
			switch pass {
			case 0:
				earcutLinked(filterPoints(ear, nil), tris, 1)
			case 1:
				ear = cureLocalIntersections(filterPoints(ear, nil), tris)
				earcutLinked(ear, tris, 2)
			case 2:
				splitEarcut(ear, tris)
			}
			return
		}
	}
}

func isEar(ear *earNode) bool {
	a, b, c := ear.prev, ear, ear.next
	if turn(a, b, c) >= 0 {
		return false
	}

	minX := gomath.Min(a.x, gomath.Min(b.x, c.x))
	minY := gomath.Min(a.y, gomath.Min(b.y, c.y))
	maxX := gomath.Max(a.x, gomath.Max(b.x, c.x))
	maxY := gomath.Max(a.y, gomath.Max(b.y, c.y))

	for p := c.next; p != a; p = p.next {
		if p.x >= minX && p.x <= maxX && p.y >= minY && p.y <= maxY &&
			!(p.x == a.x && p.y == a.y) &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
			turn(p.prev, p, p.next) >= 0 {
			return false
		}
	}
	return true
}

// filterPoints removes duplicate and collinear points between start and end.
func filterPoints(start, end *earNode) *earNode {
	if start == nil {
		return nil
	}
	if end == nil {
		end = start
	}
	p := start
	for {
		again := false
		if !p.steiner && (samePoint(p, p.next) || turn(p.prev, p, p.next) == 0) {
			removeNode(p)
			p = p.prev
			end = p
			if p == p.next {
				break
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

func cureLocalIntersections(start *earNode, tris *[][3]int) *earNode {
	p := start
	for {
		a, b := p.prev, p.next.next
		if !samePoint(a, b) && intersects(a, p, p.next, b) && locallyInside(a, b) && locallyInside(b, a) {
			*tris = append(*tris, [3]int{a.i, p.i, b.i})
			removeNode(p)
			removeNode(p.next)
			p = b
			start = b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

func splitEarcut(start *earNode, tris *[][3]int) {
	a := start
	for {
		for b := a.next.next; b != a.prev; b = b.next {
			if a.i != b.i && isValidDiagonal(a, b) {
				c := splitPolygon(a, b)
				a = filterPoints(a, a.next)
				c = filterPoints(c, c.next)
				earcutLinked(a, tris, 0)
				earcutLinked(c, tris, 0)
				return
			}
		}
		a = a.next
		if a == start {
			return
		}
	}
}

func eliminateHole(hole, outer *earNode) *earNode {
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		return outer
	}
	reverse := splitPolygon(bridge, hole)
	filterPoints(reverse, reverse.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge finds an outer vertex visible from the hole's leftmost point.
func findHoleBridge(hole, outer *earNode) *earNode {
	hx, hy := hole.x, hole.y
	qx := gomath.Inf(-1)
	var m *earNode

	p := outer
	for {
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				if p.x < p.next.x {
					m = p
				} else {
					m = p.next
				}
				if x == hx {
					return m
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}
	if m == nil {
		return nil
	}

	stop := m
	mx, my := m.x, m.y
	tanMin := gomath.Inf(1)
	p = m
	for {
		ax, cx := qx, hx
		if hy < my {
			ax, cx = hx, qx
		}
		if hx >= p.x && p.x >= mx && hx != p.x && pointInTriangle(ax, hy, mx, my, cx, hy, p.x, p.y) {
			tan := gomath.Abs(hy-p.y) / (hx - p.x)
			if locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

func sectorContainsSector(m, p *earNode) bool {
	return turn(m.prev, m, p.prev) < 0 && turn(p.next, m, m.next) < 0
}

func leftmost(start *earNode) *earNode {
	best := start
	for p := start.next; p != start; p = p.next {
		if p.x < best.x || (p.x == best.x && p.y < best.y) {
			best = p
		}
	}
	return best
}

func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

func isValidDiagonal(a, b *earNode) bool {
	if a.next.i == b.i || a.prev.i == b.i || intersectsPolygon(a, b) {
		return false
	}
	if locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
		(turn(a.prev, a, b.prev) != 0 || turn(a, b.prev, b) != 0) {
		return true
	}
	return samePoint(a, b) && turn(a.prev, a, a.next) > 0 && turn(b.prev, b, b.next) > 0
}

// turn is negative for a left (counter-clockwise) turn p -> q -> r.
func turn(p, q, r *earNode) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func samePoint(a, b *earNode) bool {
	return a.x == b.x && a.y == b.y
}

func intersects(p1, q1, p2, q2 *earNode) bool {
	o1 := sign(turn(p1, q1, p2))
	o2 := sign(turn(p1, q1, q2))
	o3 := sign(turn(p2, q2, p1))
	o4 := sign(turn(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// onSegment reports whether q lies within the bounding box of p and r.
func onSegment(p, q, r *earNode) bool {
	return q.x <= gomath.Max(p.x, r.x) && q.x >= gomath.Min(p.x, r.x) &&
		q.y <= gomath.Max(p.y, r.y) && q.y >= gomath.Min(p.y, r.y)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func intersectsPolygon(a, b *earNode) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i && intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

func locallyInside(a, b *earNode) bool {
	if turn(a.prev, a, a.next) < 0 {
		return turn(a, b, a.next) >= 0 && turn(a, a.prev, b) >= 0
	}
	return turn(a, b, a.prev) < 0 || turn(a, a.next, b) < 0
}

func middleInside(a, b *earNode) bool {
	inside := false
	px, py := (a.x+b.x)/2, (a.y+b.y)/2
	p := a
	for {
		if (p.y > py) != (p.next.y > py) && p.next.y != p.y &&
			px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x {
			inside = !inside
		}
		p = p.next
		if p == a {
			return inside
		}
	}
}

// splitPolygon links a to b with a bridge, splitting the ring in two. It
// returns the duplicate of b on the second ring.
func splitPolygon(a, b *earNode) *earNode {
	a2 := &earNode{i: a.i, x: a.x, y: a.y}
	b2 := &earNode{i: b.i, x: b.x, y: b.y}
	an, bp := a.next, b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp

	return b2
}

func insertNode(i int, p math.Vec2, last *earNode) *earNode {
	n := &earNode{i: i, x: p.X, y: p.Y}
	if last == nil {
		n.prev = n
		n.next = n
	} else {
		n.next = last.next
		n.prev = last
		last.next.prev = n
		last.next = n
	}
	return n
}

func removeNode(p *earNode) {
	p.next.prev = p.prev
	p.prev.next = p.next
}
