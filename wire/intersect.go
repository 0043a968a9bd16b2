package wire

import "errors"

var ErrNoIntersection = errors.New("wires do not intersect")

// SharedPoints returns the points that every path passes through, leaving
// out any point that is a corner of some path (including the origin).
// The result is ordered by first appearance in paths[0] and contains no
// duplicates.
func SharedPoints(paths ...*Path) []Point {
	if len(paths) == 0 {
		return nil
	}
	corners := make(map[Point]struct{})
	for _, p := range paths {
		for _, c := range p.Corners {
			corners[c] = struct{}{}
		}
	}
	sets := make([]map[Point]struct{}, len(paths)-1)
	for i, p := range paths[1:] {
		sets[i] = make(map[Point]struct{}, len(p.Points))
		for _, pt := range p.Points {
			sets[i][pt] = struct{}{}
		}
	}

	var shared []Point
	seen := make(map[Point]struct{})
pointLoop:
	for _, pt := range paths[0].Points {
		if _, ok := corners[pt]; ok {
			continue
		}
		if _, ok := seen[pt]; ok {
			continue
		}
		seen[pt] = struct{}{}
		for _, set := range sets {
			if _, ok := set[pt]; !ok {
				continue pointLoop
			}
		}
		shared = append(shared, pt)
	}
	return shared
}

// ClosestDistance returns the smallest Manhattan distance from origin to
// any of pts.
func ClosestDistance(origin Point, pts []Point) (int, error) {
	if len(pts) == 0 {
		return 0, ErrNoIntersection
	}
	best := origin.Manhattan(pts[0])
	for _, pt := range pts[1:] {
		if d := origin.Manhattan(pt); d < best {
			best = d
		}
	}
	return best, nil
}
