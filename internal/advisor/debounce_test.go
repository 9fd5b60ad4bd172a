package advisor

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

// genai links in opencensus, whose stats worker starts at init
var ignoreOpenCensus = goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start")

// countingAdvisor echoes the request id and records calls
type countingAdvisor struct {
	calls atomic.Int32
}

func (c *countingAdvisor) Advise(ctx context.Context, req Request) (string, error) {
	c.calls.Add(1)
	return "audit for " + req.ID, nil
}

type collector struct {
	mu       sync.Mutex
	insights []Insight
	got      chan struct{}
}

func newCollector() *collector { return &collector{got: make(chan struct{}, 16)} }

func (c *collector) deliver(i Insight) {
	c.mu.Lock()
	c.insights = append(c.insights, i)
	c.mu.Unlock()
	c.got <- struct{}{}
}

func (c *collector) all() []Insight {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Insight(nil), c.insights...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	adv := &countingAdvisor{}
	c := newCollector()
	d := NewDebouncer(adv, c.deliver,
		WithInterval(100*time.Millisecond),
		WithTimeout(time.Second),
		WithLogger(zaptest.NewLogger(t)))

	var last Request
	for i := 0; i < 5; i++ {
		last = sampleRequest(t)
		d.Trigger(last)
	}

	select {
	case <-c.got:
	case <-time.After(2 * time.Second):
		t.Fatal("no insight delivered")
	}
	d.Close()

	insights := c.all()
	require.Len(t, insights, 1)
	assert.Equal(t, last.ID, insights[0].RequestID)
	assert.Equal(t, "audit for "+last.ID, insights[0].Text)
	assert.Equal(t, int32(1), adv.calls.Load())
}

func TestDebouncer_CancelsInFlight(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	c := newCollector()
	d := NewDebouncer(blockingAdvisor{}, c.deliver, WithInterval(time.Millisecond), WithTimeout(time.Minute))

	d.Trigger(sampleRequest(t))
	time.Sleep(20 * time.Millisecond) // let the call start and block

	d.Close()
	assert.Empty(t, c.all(), "cancelled call must not deliver")
}

func TestDebouncer_DeliversFallback(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	c := newCollector()
	d := NewDebouncer(Offline{}, c.deliver, WithInterval(time.Millisecond))
	req := sampleRequest(t)
	d.Trigger(req)

	select {
	case <-c.got:
	case <-time.After(2 * time.Second):
		t.Fatal("no insight delivered")
	}
	d.Close()

	insights := c.all()
	require.Len(t, insights, 1)
	assert.Equal(t, OfflineMessage, insights[0].Text)
	assert.True(t, insights[0].Fallback)
}

func TestDebouncer_TriggerAfterCloseIsIgnored(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	adv := &countingAdvisor{}
	d := NewDebouncer(adv, func(Insight) { t.Error("unexpected delivery") }, WithInterval(time.Millisecond))
	d.Close()
	d.Close()
	d.Trigger(sampleRequest(t))

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), adv.calls.Load())
}

func TestDebouncer_DeliversOnlyNewest(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	var (
		mu        sync.Mutex
		seqByID   = map[string]uint64{}
		delivered int
	)

	var d *Debouncer
	deliver := func(in Insight) {
		// the debouncer lock is held here, so d.seq is stable
		mu.Lock()
		defer mu.Unlock()
		delivered++
		assert.Equal(t, seqByID[in.RequestID], d.seq, "superseded insight %s delivered", in.RequestID)
	}
	d = NewDebouncer(&countingAdvisor{}, deliver, WithInterval(time.Microsecond))

	for i := 0; i < 200; i++ {
		req := sampleRequest(t)
		mu.Lock()
		seqByID[req.ID] = uint64(i + 1)
		mu.Unlock()
		d.Trigger(req)
		if i%10 == 0 {
			time.Sleep(200 * time.Microsecond)
		}
	}
	time.Sleep(20 * time.Millisecond)
	d.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Positive(t, delivered)
}
