// Package worker runs lookups for many inputs with bounded concurrency.
package worker

import (
	"context"
	"sync"
)

// Result pairs an input with its output or error.
type Result[T any] struct {
	Input  string
	Output T
	Err    error
}

// Run calls fn for every input using at most concurrency goroutines and returns
// one Result per input, in input order. Inputs not yet started when ctx is done
// get ctx.Err() as their error. concurrency < 1 is treated as 1.
func Run[T any](ctx context.Context, inputs []string, concurrency int, fn func(context.Context, string) (T, error)) []Result[T] {
	results := make([]Result[T], len(inputs))
	if len(inputs) == 0 {
		return results
	}
	workers := min(max(concurrency, 1), len(inputs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out, err := fn(ctx, inputs[i])
				results[i] = Result[T]{Input: inputs[i], Output: out, Err: err}
			}
		}()
	}

dispatch:
	for i := range inputs {
		select {
		case <-ctx.Done():
			for j := i; j < len(inputs); j++ {
				results[j] = Result[T]{Input: inputs[j], Err: ctx.Err()}
			}
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
