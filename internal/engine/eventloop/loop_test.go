package eventloop_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cairn/internal/engine/eventloop"
)

func TestLoop_RunsTasksInOrder(t *testing.T) {
	loop := eventloop.New()
	var order []int

	loop.Post(func() { order = append(order, 1) })
	loop.Post(func() {
		order = append(order, 2)
		loop.Post(func() {
			order = append(order, 4)
			loop.Exit(7)
		})
	})
	loop.Post(func() { order = append(order, 3) })

	assert.Equal(t, 7, loop.Exec())
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestLoop_ExitDropsPendingTasks(t *testing.T) {
	loop := eventloop.New()
	ran := false

	loop.Post(func() { loop.Exit(0) })
	loop.Post(func() { ran = true })

	assert.Equal(t, 0, loop.Exec())
	assert.False(t, ran)
}

func TestLoop_WaitsForPostsFromOtherGoroutines(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		loop := eventloop.New()

		go func() {
			time.Sleep(time.Second)
			loop.Post(func() { loop.Exit(3) })
		}()

		start := time.Now()
		assert.Equal(t, 3, loop.Exec())
		assert.Equal(t, time.Second, time.Since(start))
	})
}

func TestLoop_FirstExitCodeWins(t *testing.T) {
	loop := eventloop.New()
	loop.Post(func() {
		loop.Exit(1)
		loop.Exit(2)
	})

	assert.Equal(t, 1, loop.Exec())
}
