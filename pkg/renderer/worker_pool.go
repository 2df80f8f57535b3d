package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-raycaster/pkg/core"
)

// PixelTask represents a single pixel to render, y=0 being the bottom row
type PixelTask struct {
	X, Y int
}

// PixelResult contains the rendered color of one pixel
type PixelResult struct {
	X, Y  int
	Color core.Vec3
	Error error // Set when shading the pixel panicked; Color is black
}

// WorkerPool manages parallel pixel rendering. Each worker owns its task
// queue and its result list, so no state is shared until Stop returns.
type WorkerPool struct {
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
	started    bool
}

// Worker handles the pixel tasks routed to it
type Worker struct {
	ID        int
	raytracer *Raytracer
	taskQueue chan PixelTask
	results   []PixelResult
	logger    core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(scene Scene, width, height, numWorkers int, gamma float64, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	// Round-robin routing gives every worker at most this many pixels
	queueSize := (width*height)/numWorkers + 1

	wp := &WorkerPool{numWorkers: numWorkers}
	for i := 0; i < numWorkers; i++ {
		raytracer := NewRaytracer(scene, width, height)
		raytracer.SetGamma(gamma)
		wp.workers = append(wp.workers, &Worker{
			ID:        i,
			raytracer: raytracer,
			taskQueue: make(chan PixelTask, queueSize),
			results:   make([]PixelResult, 0, queueSize),
			logger:    logger,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	if wp.started {
		return
	}
	wp.started = true
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes every task queue and waits until all queued pixels are done
func (wp *WorkerPool) Stop() {
	for _, worker := range wp.workers {
		close(worker.taskQueue)
	}
	wp.wg.Wait()
}

// SubmitTask routes the pixel to worker (x+y) mod N
func (wp *WorkerPool) SubmitTask(task PixelTask) {
	wp.workers[wp.workerFor(task)].taskQueue <- task
}

func (wp *WorkerPool) workerFor(task PixelTask) int {
	return (task.X + task.Y) % wp.numWorkers
}

// Results returns each worker's result list. Only valid after Stop.
func (wp *WorkerPool) Results() [][]PixelResult {
	results := make([][]PixelResult, len(wp.workers))
	for i, worker := range wp.workers {
		results[i] = worker.results
	}
	return results
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.results = append(w.results, w.renderPixel(task))
	}
}

// renderPixel shades one pixel, turning a panic into an error result
func (w *Worker) renderPixel(task PixelTask) (result PixelResult) {
	result = PixelResult{X: task.X, Y: task.Y}
	defer func() {
		if r := recover(); r != nil {
			result.Color = core.Vec3{}
			result.Error = fmt.Errorf("worker %d: pixel (%d, %d): %v", w.ID, task.X, task.Y, r)
			w.logger.Printf("Recovered from panic: %v\n", result.Error)
		}
	}()

	result.Color = w.raytracer.RenderPixel(task.X, task.Y)
	return result
}
