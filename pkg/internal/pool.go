// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package internal

import (
	"context"
	"runtime"
	"sync"
)

// Payload serialization is CPU-bound and can be large; running it inline
// would tie up the goroutine the caller's request shares with every other
// in-flight operation. Jobs are handed to a small fixed pool of workers
// instead and the caller waits for the result.

type serializeJob struct {
	run  func() ([]byte, error)
	done chan serializeResult
}

type serializeResult struct {
	payload []byte
	err     error
}

var (
	serializeOnce sync.Once
	serializeJobs chan serializeJob
)

func startSerializePool() {
	serializeJobs = make(chan serializeJob)
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		go func() {
			for job := range serializeJobs {
				payload, err := job.run()
				job.done <- serializeResult{payload: payload, err: err}
			}
		}()
	}
}

// submitSerialize runs fn on the serializer pool and waits for it. The pool
// is shared process-wide and started on first use. Cancelling ctx abandons
// the wait; a job already picked up by a worker still runs to completion,
// its result discarded.
func submitSerialize(ctx context.Context, fn func() ([]byte, error)) ([]byte, error) {
	serializeOnce.Do(startSerializePool)

	// The result channel is buffered so a worker never blocks delivering to
	// a caller that stopped waiting.
	job := serializeJob{run: fn, done: make(chan serializeResult, 1)}

	select {
	case serializeJobs <- job:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case result := <-job.done:
		return result.payload, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
