// Package selector models skip selectors, the positions an inverted index
// excludes, and normalizes them into the traversal order of a pick domain.
//
// A Selector is a closed variant tagged with a Kind and a rank:
//
//   - Point: a single position; its rank is the position's rank.
//   - LinearSet: linear offsets (a list, a range, or a Roaring bitmap); rank 1.
//   - AxisMask: a boolean mask whose true cells are skipped; rank = mask rank.
//   - CoordinateSet: cartesian positions of a common rank N > 1.
//   - Lazy: an already sorted position.Seq, composed without copying.
//
// Normalize turns a Selector into Skips, a sorted, duplicate-free
// position.Seq that an inverted iterator merges against its pick domain.
package selector
