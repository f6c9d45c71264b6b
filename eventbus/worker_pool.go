package eventbus

import (
	"sync"
)

// workerPool is a fixed-size pool of goroutines executing submitted tasks in
// arrival order per worker, with no ordering across workers. Tasks wait in a
// bounded queue; submit blocks while the queue is full.
type workerPool struct {
	tasks    chan func()
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func newWorkerPool(size int, queueCapacity int) *workerPool {
	pool := &workerPool{
		tasks: make(chan func(), queueCapacity),
		quit:  make(chan struct{}),
	}

	pool.wg.Add(size)
	for i := 0; i < size; i++ {
		go pool.worker()
	}

	return pool
}

func (p *workerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case task := <-p.tasks:
			task()
		case <-p.quit:
			p.drain()
			return
		}
	}
}

// drain runs all tasks still waiting in the queue without blocking for new ones.
func (p *workerPool) drain() {
	for {
		select {
		case task := <-p.tasks:
			task()
		default:
			return
		}
	}
}

// submit hands a task to the pool. It blocks while the task queue is full and
// reports false if the pool has already been stopped.
func (p *workerPool) submit(task func()) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.tasks <- task:
		return true
	case <-p.quit:
		return false
	}
}

// queueDepth reports how many submitted tasks are waiting for a worker.
func (p *workerPool) queueDepth() int {
	return len(p.tasks)
}

// stop shuts the pool down. Workers finish the tasks already queued before
// exiting; tasks that slipped in during shutdown are executed inline.
func (p *workerPool) stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})

	p.wg.Wait()
	p.drain()
}
