// Package compare implements the deep-equality engine and the diff
// renderer used by failing checks.
//
// Equality is decided by shape, in this order:
//   - string contents
//   - associative maps (same key set, values compared recursively)
//   - sequences (slices and arrays, compared element-wise in lock step)
//   - scalar fallback with cross-kind numeric coercion
//
// On mismatch, Diff renders an aligned "Expected:" / "     Got:" block.
// Large sequences spill into a multi-line bracketed form.
package compare
