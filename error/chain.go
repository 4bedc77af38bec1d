package error

import (
	"iter"

	"github.com/next-trace/scg-errbox/contract"
)

// Chain yields e followed by each successive Cause, stopping at the first nil.
// Chains are expected to be acyclic; nothing here checks for cycles.
func Chain(e contract.Error) iter.Seq[contract.Error] {
	return func(yield func(contract.Error) bool) {
		for c := e; c != nil; c = c.Cause() {
			if !yield(c) {
				return
			}
		}
	}
}

// Depth returns the number of causes below e.
func Depth(e contract.Error) int {
	n := -1
	for range Chain(e) {
		n++
	}

	if n < 0 {
		return 0
	}

	return n
}

// Root returns the deepest error of the chain starting at e.
func Root(e contract.Error) contract.Error {
	var last contract.Error
	for c := range Chain(e) {
		last = c
	}

	return last
}
