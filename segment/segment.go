// Package segment provides interval tests on the number line.
package segment

// Overlap reports whether the closed intervals spanned by (a1, a2) and
// (b1, b2) intersect. Endpoint order does not matter: (5, 1) spans the
// same interval as (1, 5). Intervals that merely touch at an endpoint
// count as overlapping.
func Overlap(a1, a2, b1, b2 float64) bool {
	aMin, aMax := min(a1, a2), max(a1, a2)
	bMin, bMax := min(b1, b2), max(b1, b2)

	return aMin <= bMax && bMin <= aMax
}
