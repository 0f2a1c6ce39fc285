package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkers_RunsAllInOrder(t *testing.T) {
	var order []int

	ws := NewWorkers(
		WorkerFunc(func() { order = append(order, 1) }),
		WorkerFunc(func() { order = append(order, 2) }),
		WorkerFunc(func() { order = append(order, 3) }),
	)
	ws.Run()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_SkipsNilWorkers(t *testing.T) {
	var calls int

	ws := NewWorkers(nil, WorkerFunc(func() { calls++ }), nil)
	ws.Run()

	assert.Equal(t, 1, calls)
}

func TestWorkers_EmptyIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Run() })
}

func TestWorkers_RunIsRepeatable(t *testing.T) {
	var calls int

	ws := NewWorkers(WorkerFunc(func() { calls++ }))
	ws.Run()
	ws.Run()

	assert.Equal(t, 2, calls)
}
