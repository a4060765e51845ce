// SPDX-License-Identifier: MIT

package timing

import "sort"

// PointList is an ordered sequence of Points. Insertion order is
// significant; the slice type guarantees only Points can ever be stored.
// Sub-lists are plain Go re-slices.
type PointList []Point

// PointsFromSeconds converts a flat array of instants (in seconds) to a
// PointList, preserving order.
func PointsFromSeconds(seconds []float64) PointList {
	pl := make(PointList, len(seconds))
	for i, s := range seconds {
		pl[i] = PointFromSeconds(s)
	}

	return pl
}

// Append adds p at the end of the list and returns the extended list.
func (pl PointList) Append(p Point) PointList { return append(pl, p) }

// Insert places p at its chronological position in an ordered list and
// returns the extended list.
func (pl PointList) Insert(p Point) PointList {
	i := sort.Search(len(pl), func(i int) bool { return p.Before(pl[i]) })
	pl = append(pl, Point{})
	copy(pl[i+1:], pl[i:])
	pl[i] = p

	return pl
}

// Seconds converts the list back to a flat float64 array, preserving order.
func (pl PointList) Seconds() []float64 {
	out := make([]float64, len(pl))
	for i, p := range pl {
		out[i] = p.Seconds()
	}

	return out
}

// MapIndexes maps every point into ref. See Point.MapIndex.
func (pl PointList) MapIndexes(ref Sampled) []int {
	out := make([]int, len(pl))
	for i, p := range pl {
		out[i] = p.MapIndex(ref)
	}

	return out
}

// ToSegments pairs the points into disjoint intervals: points
// p0,p1,p2,p3,... become segments [p0,p1], [p2,p3], ...
// ErrOddPointCount is returned when the list cannot be paired up;
// ErrInvalidInterval when the list is not ordered.
func (pl PointList) ToSegments() (SegmentList, error) {
	if len(pl) == 0 || len(pl)%2 != 0 {
		return nil, ErrOddPointCount
	}

	sl := make(SegmentList, 0, len(pl)/2)
	for i := 0; i+1 < len(pl); i += 2 {
		seg, err := NewSegment(pl[i], pl[i+1])
		if err != nil {
			return nil, err
		}
		sl = append(sl, seg)
	}

	return sl, nil
}

// SegmentList is an ordered sequence of Segments with the same container
// contract as PointList.
type SegmentList []Segment

// Durations returns the duration of every segment, in seconds.
func (sl SegmentList) Durations() []float64 {
	out := make([]float64, len(sl))
	for i, s := range sl {
		out[i] = s.Duration().Float64()
	}

	return out
}
