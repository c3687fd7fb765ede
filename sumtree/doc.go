/*
Package sumtree maintains running sums over a sequence tree.

It is a worked example of the seqtree augmentation hook: every node carries
the sum of its subtree's elements, refreshed bottom-up whenever the tree
recomputes subtree sizes. On top of that aggregate the package offers prefix
sums and sum-guided position search, both in O(log n).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021–23, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sumtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqtree'
func tracer() tracing.Trace {
	return tracing.Select("seqtree")
}
