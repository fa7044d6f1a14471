package execution

import (
	"context"
	"sync"

	"surefire/internal/domain"
)

// WorkerPool runs jobs on a fixed number of workers
type WorkerPool struct {
	runner   *Runner
	workers  int
	progress Progress
}

// NewWorkerPool creates a new WorkerPool. Fewer than one worker means one.
func NewWorkerPool(runner *Runner, workers int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &WorkerPool{runner: runner, workers: workers}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute runs every job and returns the results in job order. The first launch
// error cancels the remaining jobs and is returned.
func (wp *WorkerPool) Execute(ctx context.Context, jobs []Job) ([]domain.TestSetResult, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan int, len(jobs))
	for i := range jobs {
		queue <- i
	}
	close(queue)

	results := make([]domain.TestSetResult, len(jobs))

	var mu sync.Mutex
	var firstErr error
	var passed, failed int

	workerCount := wp.workers
	if workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					return
				}
				result, err := wp.runner.Run(ctx, jobs[idx])

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					return
				}
				results[idx] = result
				if result.Success {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(passed, failed)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
