// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Job dispatches tasks for parallel processing and waits for the result
type Job[T any] struct {
	// MaxWorkers is the maximum number of workers processing tasks in parallel
	MaxWorkers int
	// Worker for processing tasks
	Worker Worker[T]
	// FailFast controls the behavior of this Job upon errors. If set to true, it will quit
	// further processing upon the first error that occurs. For fault tolerant processing
	// use false.
	FailFast bool
}

// Worker declares workers functional interface
type Worker[T any] interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task T) error
}

// The WorkerFunc type is an adapter to allow the use of
// ordinary functions as Workers.
type WorkerFunc[T any] func(ctx context.Context, task T) error

// Work calls f(ctx, task).
func (f WorkerFunc[T]) Work(ctx context.Context, task T) error {
	return f(ctx, task)
}

// feeds tasks to the returned channel until all are sent or the context is done
func (j *Job[T]) allocate(ctx context.Context, tasks []T) <-chan T {
	taskCh := make(chan T)
	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()
	return taskCh
}

// processes tasks until the tasks channel is closed or the context is done.
// A fail fast job sends at most one error per worker.
func (j *Job[T]) process(ctx context.Context, taskCh <-chan T) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for {
			select {
			case task, ok := <-taskCh:
				if !ok {
					return
				}
				if err := j.Worker.Work(ctx, task); err != nil {
					errCh <- err
					if j.FailFast {
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return errCh
}

// Dispatch spawns up to MaxWorkers workers processing the supplied tasks in
// parallel. A fail fast job returns the first error as soon as it occurs and
// disposes the workers. Otherwise all tasks are processed and the errors are
// returned aggregated. A done context stops the processing and its error is
// returned.
func (j *Job[T]) Dispatch(ctx context.Context, tasks []T) error {
	if len(tasks) == 0 {
		return nil
	}
	workersCount := len(tasks)
	if j.MaxWorkers > 0 && workersCount > j.MaxWorkers {
		workersCount = j.MaxWorkers
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskCh := j.allocate(workCtx, tasks)
	errcList := make([]<-chan error, 0, workersCount)
	for i := 0; i < workersCount; i++ {
		errcList = append(errcList, j.process(workCtx, taskCh))
	}

	if err := waitForPipeline(j.FailFast, errcList...); err != nil {
		return err
	}
	return ctx.Err()
}

// merges asynchronously produced errors from multiple error channels into a single channel
func mergeErrors(channels ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	// capacity for one error per channel so that fail fast workers never block
	// once waitForPipeline returns early
	errCh := make(chan error, len(channels))

	output := func(ch <-chan error) {
		for err := range ch {
			errCh <- err
		}
		wg.Done()
	}
	wg.Add(len(channels))
	for _, ch := range channels {
		go output(ch)
	}

	go func() {
		wg.Wait()
		close(errCh)
	}()
	return errCh
}

// waitForPipeline waits for results from all error channels.
// It returns early on the first error if failFast is true or
// collects errors and returns an aggregated error at the end.
func waitForPipeline(failFast bool, errChs ...<-chan error) error {
	var errs *multierror.Error
	for err := range mergeErrors(errChs...) {
		if failFast {
			return err
		}
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}
