// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package internal

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSerializeReturnsResult(t *testing.T) {
	payload, err := submitSerialize(context.Background(), func() ([]byte, error) {
		return []byte("encoded"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("encoded"), payload)
}

func TestSubmitSerializePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := submitSerialize(context.Background(), func() ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestSubmitSerializeConcurrent(t *testing.T) {
	// More submissions than workers, so some must queue behind others.
	jobs := runtime.GOMAXPROCS(0) * 4

	var wg sync.WaitGroup
	errs := make(chan error, jobs)
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload, err := submitSerialize(context.Background(), func() ([]byte, error) {
				return []byte{byte(i)}, nil
			})
			if err != nil {
				errs <- err
				return
			}
			if len(payload) != 1 || payload[0] != byte(i) {
				errs <- errors.New("result delivered to the wrong caller")
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestSubmitSerializeCancelledWhileQueued(t *testing.T) {
	// Tie up every worker so the next submission cannot be picked up.
	workers := runtime.GOMAXPROCS(0)
	release := make(chan struct{})
	running := make(chan struct{}, workers)
	var blocked sync.WaitGroup
	for i := 0; i < workers; i++ {
		blocked.Add(1)
		go func() {
			defer blocked.Done()
			_, _ = submitSerialize(context.Background(), func() ([]byte, error) {
				running <- struct{}{}
				<-release
				return nil, nil
			})
		}()
	}
	for i := 0; i < workers; i++ {
		<-running
	}
	defer func() {
		close(release)
		blocked.Wait()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := submitSerialize(ctx, func() ([]byte, error) {
		t.Error("queued job must not run once the caller gave up")
		return nil, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation is prompt, not tied to worker availability")
}

func TestSubmitSerializeAbandonedJobStillCompletes(t *testing.T) {
	started := make(chan struct{})
	finished := make(chan struct{})
	release := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_, _ = submitSerialize(ctx, func() ([]byte, error) {
			close(started)
			<-release
			close(finished)
			return []byte("late"), nil
		})
	}()

	<-started
	cancel()
	close(release)

	// The worker finishes the job and moves on; the buffered result channel
	// absorbs the delivery nobody is waiting for.
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("abandoned job never ran to completion")
	}

	_, err := submitSerialize(context.Background(), func() ([]byte, error) {
		return []byte("next"), nil
	})
	require.NoError(t, err, "pool stays usable after an abandoned job")
}
