package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type funcAction func(ctx context.Context, env actions.Env) error

func (f funcAction) Perform(ctx context.Context, env actions.Env) error {
	return f(ctx, env)
}

func TestOperatorDelegator_ProcessReturnsActionResult(t *testing.T) {
	d := NewOperatorDelegator(actions.Env{}, 2)
	d.Start()
	defer d.Stop()

	err := d.Process(context.Background(), funcAction(func(context.Context, actions.Env) error {
		return nil
	}))
	assert.NoError(t, err)

	err = d.Process(context.Background(), funcAction(func(context.Context, actions.Env) error {
		return errors.New("upstream said no")
	}))
	assert.EqualError(t, err, "upstream said no")
}

func TestOperatorDelegator_ManyConcurrentActions(t *testing.T) {
	d := NewOperatorDelegator(actions.Env{}, 4)
	d.Start()
	defer d.Stop()

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Process(context.Background(), funcAction(func(context.Context, actions.Env) error {
				count.Add(1)
				return nil
			}))
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), count.Load())
}

func TestOperatorDelegator_PanicBecomesError(t *testing.T) {
	d := NewOperatorDelegator(actions.Env{}, 1)
	d.Start()
	defer d.Stop()

	err := d.Process(context.Background(), funcAction(func(context.Context, actions.Env) error {
		panic("boom")
	}))
	assert.ErrorContains(t, err, "boom")

	assert.NoError(t, d.Process(context.Background(), funcAction(func(context.Context, actions.Env) error {
		return nil
	})), "the worker survives a panicking action")
}

func TestOperatorDelegator_ContextCancelled(t *testing.T) {
	d := NewOperatorDelegator(actions.Env{}, 1)
	d.Start()
	defer d.Stop()

	release := make(chan struct{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, funcAction(func(context.Context, actions.Env) error {
		<-release
		return nil
	}))
	close(release)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOperatorDelegator_SkipsExpiredItems(t *testing.T) {
	d := NewOperatorDelegator(actions.Env{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	op := NewOperator(d.env, d.queue)
	resp := make(chan ActionItemResponse, 1)
	op.processItem(ActionItem{
		ctx:      ctx,
		action:   funcAction(func(context.Context, actions.Env) error { ran = true; return nil }),
		response: resp,
	})

	assert.ErrorIs(t, (<-resp).err, context.Canceled)
	assert.False(t, ran)
}

func TestOperatorDelegator_ProcessAfterStop(t *testing.T) {
	d := NewOperatorDelegator(actions.Env{}, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(context.Context, actions.Env) error {
		return nil
	}))
	assert.ErrorIs(t, err, ErrStopped)
}

func TestNewOperatorDelegator_AtLeastOneWorker(t *testing.T) {
	d := NewOperatorDelegator(actions.Env{}, 0)
	assert.Equal(t, 1, d.numWorkers)
}
