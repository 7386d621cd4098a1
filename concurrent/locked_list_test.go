package concurrent

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"dsa_code/heap/linked_list"
)

func TestLockedList_sequential(t *testing.T) {
	assert := assert.New(t)

	l := NewLockedList(1, 2, 3)
	assert.NoError(l.InsertAt(1, 99))
	assert.Equal([]int{1, 99, 2, 3}, l.Values())

	v, err := l.RemoveAt(1)
	assert.NoError(err)
	assert.Equal(99, v)

	v, err = l.Pop()
	assert.NoError(err)
	assert.Equal(3, v)
	assert.Equal(1.5, Average(l))

	_, err = l.GetAt(2)
	assert.ErrorIs(err, linked_list.ErrIndexOutOfRange)
}

func TestLockedList_concurrent(t *testing.T) {
	assert := assert.New(t)

	l := NewLockedList[int]()

	var wg sync.WaitGroup
	wg.Add(100)
	// Push and unshift concurrently
	for i := range 100 {
		go func() {
			if i%2 == 0 {
				l.Push(i)
			} else {
				l.Unshift(i)
			}
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(100, l.Len())
	vals := l.Values()
	sort.Ints(vals)
	for i, v := range vals {
		assert.Equal(i, v)
	}
	assert.Equal(49.5, Average(l))
}

func TestLockedList_concurrentDrain(t *testing.T) {
	assert := assert.New(t)

	vals := make([]int, 50)
	for i := range vals {
		vals[i] = i
	}
	l := NewLockedList(vals...)

	var mu sync.Mutex
	var got []int
	var wg sync.WaitGroup
	wg.Add(50)
	for i := range 50 {
		go func() {
			var v int
			var err error
			if i%2 == 0 {
				v, err = l.Pop()
			} else {
				v, err = l.Shift()
			}
			assert.NoError(err)
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(0, l.Len())
	sort.Ints(got)
	assert.Equal(vals, got)

	_, err := l.Shift()
	assert.ErrorIs(err, linked_list.ErrEmptyList)
}
