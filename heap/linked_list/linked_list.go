package linked_list

import (
	"fmt"

	"github.com/goose-lang/std"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	ErrEmptyList       = errors.New("list is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Number is the set of element types Average accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

type node[T any] struct {
	val  T
	next *node[T]
}

// LinkedList is a singly linked list. The zero value is an empty list.
//
// head owns the chain; tail only points at the last node reached from head.
type LinkedList[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// New creates a list holding vals, pushed in order.
func New[T any](vals ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, val := range vals {
		l.Push(val)
	}
	return l
}

func (l *LinkedList[T]) Len() int {
	return l.length
}

// Push appends val as the new tail.
func (l *LinkedList[T]) Push(val T) {
	n := &node[T]{val: val}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// Unshift prepends val as the new head.
func (l *LinkedList[T]) Unshift(val T) {
	n := &node[T]{val: val, next: l.head}
	if l.head == nil {
		l.tail = n
	}
	l.head = n
	l.length++
}

// Pop removes and returns the last value.
//
// There are no back links, so finding the new tail walks the whole list.
func (l *LinkedList[T]) Pop() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	if l.length == 1 {
		val := l.head.val
		l.head = nil
		l.tail = nil
		l.length--
		return val, nil
	}

	newTail := l.head
	for newTail.next != l.tail {
		newTail = newTail.next
	}
	val := l.tail.val
	newTail.next = nil
	l.tail = newTail
	l.length--
	return val, nil
}

// Shift removes and returns the first value.
func (l *LinkedList[T]) Shift() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	val := l.head.val
	l.head = l.head.next
	l.length--
	if l.length == 0 {
		l.tail = nil
	}
	std.Assert((l.head == nil) == (l.tail == nil))
	return val, nil
}

func (l *LinkedList[T]) checkIndex(idx int, limit int) error {
	if idx < 0 || idx >= limit {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", idx, l.length)
	}
	return nil
}

// nodeAt walks from head to position idx, which must be in range.
func (l *LinkedList[T]) nodeAt(idx int) *node[T] {
	n := l.head
	for i := 0; i < idx; i++ {
		n = n.next
	}
	return n
}

func (l *LinkedList[T]) GetAt(idx int) (T, error) {
	if err := l.checkIndex(idx, l.length); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(idx).val, nil
}

func (l *LinkedList[T]) SetAt(idx int, val T) error {
	if err := l.checkIndex(idx, l.length); err != nil {
		return err
	}
	l.nodeAt(idx).val = val
	return nil
}

// InsertAt makes val the element at position idx. Unlike the other
// indexed operations, idx == Len() is accepted and appends.
func (l *LinkedList[T]) InsertAt(idx int, val T) error {
	if err := l.checkIndex(idx, l.length+1); err != nil {
		return err
	}
	if idx == 0 {
		l.Unshift(val)
		return nil
	}
	if idx == l.length {
		l.Push(val)
		return nil
	}

	prev := l.nodeAt(idx - 1)
	prev.next = &node[T]{val: val, next: prev.next}
	l.length++
	std.Assert(l.tail.next == nil)
	return nil
}

// RemoveAt removes and returns the value at position idx.
func (l *LinkedList[T]) RemoveAt(idx int) (T, error) {
	if err := l.checkIndex(idx, l.length); err != nil {
		var zero T
		return zero, err
	}
	if idx == 0 {
		return l.Shift()
	}
	if idx == l.length-1 {
		return l.Pop()
	}

	prev := l.nodeAt(idx - 1)
	removed := prev.next
	prev.next = removed.next
	l.length--
	std.Assert(prev.next != nil)
	return removed.val, nil
}

// Values copies the list contents into a new slice, head first.
func (l *LinkedList[T]) Values() []T {
	vals := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		vals = append(vals, n.val)
	}
	return vals
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.Values())
}

// Average returns the arithmetic mean of the values in l, or 0 if l is
// empty.
func Average[T Number](l *LinkedList[T]) float64 {
	if l.length == 0 {
		return 0
	}
	var total float64
	for n := l.head; n != nil; n = n.next {
		total += float64(n.val)
	}
	return total / float64(l.length)
}

func Contains[T comparable](l *LinkedList[T], val T) bool {
	var n = l.head
	for n != nil {
		if n.val == val {
			return true
		}
		n = n.next
	}
	return false
}
