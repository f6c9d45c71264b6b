package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_workerPool_RunsSubmittedTasks(t *testing.T) {
	// arrange
	pool := newWorkerPool(2, 8)
	var executed atomic.Int32

	// act
	for i := 0; i < 5; i++ {
		submitted := pool.submit(func() {
			executed.Add(1)
		})
		assert.True(t, submitted)
	}

	// assert
	assert.Eventually(t, func() bool {
		return executed.Load() == 5
	}, time.Second, time.Millisecond)

	pool.stop()
}

func Test_workerPool_Submit_ReturnsFalseAfterStop(t *testing.T) {
	// arrange
	pool := newWorkerPool(1, 1)
	pool.stop()

	// act
	submitted := pool.submit(func() {})

	// assert
	assert.False(t, submitted)
}

func Test_workerPool_Stop_DrainsQueuedTasks(t *testing.T) {
	// arrange: one worker blocked so further tasks pile up in the queue
	pool := newWorkerPool(1, 8)
	release := make(chan struct{})
	var executed atomic.Int32

	pool.submit(func() {
		<-release
	})

	for i := 0; i < 4; i++ {
		pool.submit(func() {
			executed.Add(1)
		})
	}

	close(release)

	// act
	pool.stop()

	// assert: stop returns only after the queued tasks ran
	assert.Equal(t, int32(4), executed.Load())
	assert.Equal(t, 0, pool.queueDepth())
}
