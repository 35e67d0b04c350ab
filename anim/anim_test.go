package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTimeline() (*Timeline, *fakeClock) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	tl := NewTimeline()
	tl.Clock = clk.Now
	return tl, clk
}

func TestLinearProgress(t *testing.T) {
	tl, clk := newTestTimeline()
	var got []int32
	tl.Start(Anim{
		Owner:    "needle",
		From:     0,
		To:       100,
		Duration: 100 * time.Millisecond,
		Exec:     func(v int32) { got = append(got, v) },
	})

	clk.Advance(50 * time.Millisecond)
	tl.Tick()
	clk.Advance(60 * time.Millisecond)
	tl.Tick()

	require.Len(t, got, 3)
	assert.Equal(t, int32(0), got[0], "first value applied on start")
	assert.Equal(t, int32(50), got[1])
	assert.Equal(t, int32(100), got[2], "last tick lands exactly on target")
	assert.Equal(t, 0, tl.Running())
}

func TestCancelByOwner(t *testing.T) {
	tl, clk := newTestTimeline()
	calls := 0
	owner := &struct{ id int }{1}
	other := &struct{ id int }{2}

	tl.Start(Anim{Owner: owner, Key: "a", To: 10, Duration: time.Second, Exec: func(int32) { calls++ }})
	tl.Start(Anim{Owner: owner, Key: "b", To: 10, Duration: time.Second, Exec: func(int32) { calls++ }})
	tl.Start(Anim{Owner: other, To: 10, Duration: time.Second})

	assert.Equal(t, 2, tl.Cancel(owner))
	assert.Equal(t, 1, tl.Running())

	calls = 0
	clk.Advance(2 * time.Second)
	tl.Tick()
	assert.Zero(t, calls, "canceled animations must not execute")
}

func TestRestartReplacesSameKey(t *testing.T) {
	tl, _ := newTestTimeline()
	tl.Start(Anim{Owner: "o", Key: "end", To: 10, Duration: time.Second})
	tl.Start(Anim{Owner: "o", Key: "end", To: 20, Duration: time.Second})
	tl.Start(Anim{Owner: "o", Key: "start", To: 20, Duration: time.Second})
	assert.Equal(t, 2, tl.Running())
}

func TestReadyCallback(t *testing.T) {
	tl, clk := newTestTimeline()
	ready := false
	tl.Start(Anim{Owner: 1, To: 5, Duration: 10 * time.Millisecond, Ready: func() { ready = true }})
	clk.Advance(10 * time.Millisecond)
	tl.Tick()
	assert.True(t, ready)
}

func TestPathsEndpoints(t *testing.T) {
	for name, p := range map[string]Path{"linear": Linear, "ease_out": EaseOut, "overshoot": Overshoot} {
		assert.Equal(t, int32(0), p(0), name)
		assert.InDelta(t, Resolution, p(Resolution), 1, name)
	}
}

func TestOvershootPassesTarget(t *testing.T) {
	peak := int32(0)
	for i := int32(0); i <= Resolution; i += 16 {
		peak = max(peak, Overshoot(i))
	}
	assert.Greater(t, peak, int32(Resolution))
}
