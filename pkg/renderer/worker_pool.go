package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// RowTask represents a single scanline rendering task for the worker pool
type RowTask struct {
	Row    int        // Framebuffer row to render (0 = top scanline)
	Random *rand.Rand // Task-owned random stream, never shared
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row     int
	Samples int // Samples taken across the row
}

// WorkerPool manages parallel row rendering. Each task writes a disjoint
// framebuffer row, so workers need no synchronization beyond the final join.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	renderer    *Renderer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
// rendering rows for the given renderer
func NewWorkerPool(renderer *Renderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer for every row so submission never blocks
	height := renderer.height

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop shuts down all workers and waits for them to finish. This is the
// single barrier between rendering and emission.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each row has non-overlapping framebuffer bounds, so writing
		// directly to the shared framebuffer is thread-safe
		w.resultQueue <- w.renderer.renderRow(task)
	}
}
