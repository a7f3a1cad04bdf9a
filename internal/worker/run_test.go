package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tbckr/cnam/internal/worker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func echo(_ context.Context, in string) (string, error) { return in, nil }

func TestRun_OrderPreserved(t *testing.T) {
	inputs := make([]string, 20)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("input-%d", i)
	}

	results := worker.Run(context.Background(), inputs, 5, echo)
	require.Len(t, results, len(inputs))
	for i, r := range results {
		assert.Equal(t, inputs[i], r.Input)
		assert.Equal(t, inputs[i], r.Output)
		assert.NoError(t, r.Err)
	}
}

func TestRun_ErrorPerInput(t *testing.T) {
	fn := func(_ context.Context, in string) (string, error) {
		if in == "bad" {
			return "", errors.New("bad input")
		}
		return in, nil
	}
	results := worker.Run(context.Background(), []string{"good", "bad", "good"}, 3, fn)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}

func TestRun_Empty(t *testing.T) {
	results := worker.Run(context.Background(), nil, 4, echo)
	assert.Empty(t, results)
}

func TestRun_ConcurrencyBound(t *testing.T) {
	var inFlight, peak atomic.Int32
	fn := func(_ context.Context, in string) (string, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return in, nil
	}

	inputs := make([]string, 30)
	for i := range inputs {
		inputs[i] = fmt.Sprint(i)
	}
	worker.Run(context.Background(), inputs, 3, fn)
	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Positive(t, peak.Load())
}

func TestRun_ZeroConcurrencyRunsSequentially(t *testing.T) {
	results := worker.Run(context.Background(), []string{"a", "b"}, 0, echo)
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[1].Output)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	fn := func(_ context.Context, in string) (string, error) {
		calls.Add(1)
		return in, nil
	}
	results := worker.Run(ctx, []string{"a", "b", "c"}, 1, fn)
	require.Len(t, results, 3)
	for _, r := range results {
		if r.Err != nil {
			assert.ErrorIs(t, r.Err, context.Canceled)
		}
		assert.NotEmpty(t, r.Input)
	}
}
