package overflow

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
)

// Records - Is used to iterate over the entries of a chain one by one.
type Records[T any] struct {
	current *model.Node[T]
}

// NewRecords - Returns a pointer to a new Records struct starting at head
func NewRecords[T any](head *model.Node[T]) *Records[T] {
	return &Records[T]{
		current: head,
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (O *Records[T]) HasNext() bool {
	return O.current != nil
}

// Next - Returns the next node in the chain.
// It returns:
//   - node is the next node in the chain.
//   - err is of type crt.NotFound if there are no more nodes when calling this function.
func (O *Records[T]) Next() (node *model.Node[T], err error) {
	if O.current == nil {
		err = crt.NotFound{}
		return
	}

	node = O.current
	O.current = node.Next

	return
}
