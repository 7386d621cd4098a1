package concurrent

import (
	"sync"

	"dsa_code/heap/linked_list"
)

// LockedList guards a LinkedList with a single mutex. Every method holds
// the lock for the whole operation.
type LockedList[T any] struct {
	mu   sync.Mutex
	list *linked_list.LinkedList[T]
}

func NewLockedList[T any](vals ...T) *LockedList[T] {
	return &LockedList[T]{list: linked_list.New(vals...)}
}

func (l *LockedList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Len()
}

func (l *LockedList[T]) Push(val T) {
	l.mu.Lock()
	l.list.Push(val)
	l.mu.Unlock()
}

func (l *LockedList[T]) Unshift(val T) {
	l.mu.Lock()
	l.list.Unshift(val)
	l.mu.Unlock()
}

func (l *LockedList[T]) Pop() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Pop()
}

func (l *LockedList[T]) Shift() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Shift()
}

func (l *LockedList[T]) GetAt(idx int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.GetAt(idx)
}

func (l *LockedList[T]) SetAt(idx int, val T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.SetAt(idx, val)
}

func (l *LockedList[T]) InsertAt(idx int, val T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.InsertAt(idx, val)
}

func (l *LockedList[T]) RemoveAt(idx int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.RemoveAt(idx)
}

// Values returns a snapshot of the contents.
func (l *LockedList[T]) Values() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Values()
}

func Average[T linked_list.Number](l *LockedList[T]) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return linked_list.Average(l.list)
}
