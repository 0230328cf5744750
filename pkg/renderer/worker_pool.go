package renderer

import (
	"runtime"
	"sync"
)

// RowBandTask represents a band of image rows for the worker pool
type RowBandTask struct {
	TaskID   int
	FirstRow int    // Inclusive
	LastRow  int    // Exclusive
	Buffer   []byte // Shared output buffer; bands write disjoint ranges
}

// RowBandResult contains the result from rendering a band
type RowBandResult struct {
	TaskID int
	Rows   int
}

// WorkerPool manages parallel row-band rendering. The raytracer is
// stateless, so all workers share one renderer.
type WorkerPool struct {
	taskQueue   chan RowBandTask
	resultQueue chan RowBandResult
	renderer    *Renderer
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *Renderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer enough for every band in a frame so submission never blocks
	maxBands := (renderer.config.Height + rowBandHeight - 1) / rowBandHeight

	return &WorkerPool{
		taskQueue:   make(chan RowBandTask, maxBands),
		resultQueue: make(chan RowBandResult, maxBands),
		renderer:    renderer,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row band to the worker pool
func (wp *WorkerPool) SubmitTask(task RowBandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (RowBandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.renderer.renderRows(task.FirstRow, task.LastRow, task.Buffer)
		wp.resultQueue <- RowBandResult{
			TaskID: task.TaskID,
			Rows:   task.LastRow - task.FirstRow,
		}
	}
}
