package thicket

// Anchor positions one edge of a control relative to its parent's frame: a
// fraction of the parent's size plus a fixed offset.
type Anchor struct {
	Percentage float64
	Offset     float64
}

// PointWithin returns the absolute position of the anchor inside iv.
func (a Anchor) PointWithin(iv Interval) float64 {
	return iv.Start + a.Percentage*iv.Size + a.Offset
}

// Anchors holds the start and end anchor of a control along one axis.
type Anchors struct {
	Start Anchor
	End   Anchor
}

// DefaultAnchors stretches a control over its parent's full extent.
var DefaultAnchors = Anchors{Start: Anchor{0, 0}, End: Anchor{1, 0}}

// IntervalWithin computes the interval described by the anchors inside iv.
func (a Anchors) IntervalWithin(iv Interval) Interval {
	start := a.Start.PointWithin(iv)
	end := a.End.PointWithin(iv)
	return Interval{Start: start, Size: end - start}
}

// FixedAnchors pins a span of the given size at offset from the parent's start.
func FixedAnchors(offset, size float64) Anchors {
	return Anchors{Start: Anchor{0, offset}, End: Anchor{0, offset + size}}
}

// MarginAnchors stretches a control over its parent, inset by start and end.
func MarginAnchors(start, end float64) Anchors {
	return Anchors{Start: Anchor{0, start}, End: Anchor{1, -end}}
}

// FractionAnchors spans the fraction [from, to] of the parent.
func FractionAnchors(from, to float64) Anchors {
	return Anchors{Start: Anchor{from, 0}, End: Anchor{to, 0}}
}
