package renderer

import (
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int    // For deterministic ordering
	Image  *Image // Shared output image; each tile writes only its own bounds
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	renderer    *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// numWorkers <= 0 uses one worker per CPU. maxTasks sizes the queues so
// submitting never blocks.
func NewWorkerPool(renderer *TileRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
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
		// Tiles have non-overlapping bounds, so writing to the shared image is safe
		stats := w.renderer.RenderTile(task.Tile, task.Image)

		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Stats:  stats,
		}
	}
}
