// Package libdiff computes line diffs of rendered items.
//
//	lines := libdiff.Lines(before, after)
//	if libdiff.Changed(lines) {
//		fmt.Print(libdiff.Format(lines))
//	}
package libdiff
