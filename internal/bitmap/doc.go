// Package bitmap wraps Roaring bitmaps as sorted, deduplicated position sets.
//
// Offsets (64-bit) holds linear skip offsets; inserting into it sorts and
// deduplicates in one pass, and Minimum/Maximum make bounds checks O(1).
// Ordinals (32-bit) holds the set cells of a boolean mask by their ordinal
// in canonical enumeration order.
package bitmap
