/*
Package seqtree provides an order-statistics sequence container: a balanced
binary tree that stores an ordered sequence of values and supports positional
access, insertion and erasure in O(log n), plus O(log n) concatenation and
splitting of whole sequences.

# Sequence trees

Unlike a search tree, a sequence tree does not sort its values. Callers impose
order externally, by choosing the position at which each value is inserted;
the tree merely keeps the sequence balanced. This is the kind of primitive
found inside rope and text-buffer engines, mergeable priority structures, and
indexes that need positional rather than keyed ordering.

Internally the container is a red-black tree augmented with subtree sizes and
black-heights. Sizes drive rank-based navigation (find the i-th element
without any value comparison), while black-heights allow two trees to be
joined along their balanced spines, which is what makes whole-structure
concatenation and splitting logarithmic instead of linear:

	Operation     |   seqtree       |  slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)
	Concatenate   |   O(log n)      |   O(n)
	Split         |   O(log n)      |   O(n)
	Iterate       |   O(n)          |   O(n)

For workloads with many editing operations on long sequences, the tree has
stable performance and space characteristics; for short sequences a plain
slice will usually win.

# Contract

The container follows the discipline of a low-level structure: operations do
not validate their inputs. Indexing past the end, reading the front or back
of an empty sequence, dereferencing an end cursor, or stepping a cursor past
either boundary of the sequence is undefined behavior. Callers are expected
to respect Len and the cursor boundaries themselves.

The container is not safe for concurrent mutation. Exactly one goroutine may
mutate a tree at a time; external synchronization is the caller's business.

# Augmentation

A tree may carry a recompute hook, supplied at construction, which is invoked
whenever a node's subtree size is refreshed. Derived structures use the hook
to maintain additional bottom-up aggregates per node, such as subtree sums.
See the sumtree subpackage for a worked example.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–23, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package seqtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is the in-package alias for T. Generic methods must use it, since
// their element type parameter shadows the name T.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// SeqError is an error type for the seqtree module.
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrInvariantViolated is returned by Check whenever the structural invariants
// of a tree do not hold.
const ErrInvariantViolated = SeqError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
