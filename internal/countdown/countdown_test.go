package countdown

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	mu        sync.Mutex
	remaining []Remaining
	started   int
}

func (d *recordingDisplay) ShowRemaining(r Remaining) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.remaining = append(d.remaining, r)
}

func (d *recordingDisplay) ShowStarted() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.started++
}

func (d *recordingDisplay) snapshot() ([]Remaining, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Remaining, len(d.remaining))
	copy(out, d.remaining)
	return out, d.started
}

// fakeClock is safe to read from the tick goroutine while the test advances it.
type fakeClock struct {
	nanos atomic.Int64
}

func newFakeClock(t time.Time) *fakeClock {
	c := &fakeClock{}
	c.nanos.Store(t.UnixNano())
	return c
}

func (c *fakeClock) Now() time.Time {
	return time.Unix(0, c.nanos.Load())
}

func (c *fakeClock) Advance(d time.Duration) {
	c.nanos.Add(int64(d))
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want Remaining
	}{
		{0, Remaining{}},
		{90 * time.Second, Remaining{Minutes: 1, Seconds: 30}},
		{90*time.Second + 999*time.Millisecond, Remaining{Minutes: 1, Seconds: 30}},
		{26*time.Hour + 3*time.Minute + 4*time.Second, Remaining{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}},
		{23*time.Hour + 59*time.Minute + 59*time.Second, Remaining{Hours: 23, Minutes: 59, Seconds: 59}},
		{-time.Second, Remaining{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decompose(tt.d), tt.d.String())
	}
}

func TestTick(t *testing.T) {
	now := time.Date(2026, 12, 5, 17, 58, 30, 0, time.UTC)
	target := now.Add(90 * time.Second)

	d := &recordingDisplay{}
	assert.False(t, Tick(target, now, d))
	remaining, started := d.snapshot()
	require.Len(t, remaining, 1)
	assert.Equal(t, Remaining{Minutes: 1, Seconds: 30}, remaining[0])
	assert.Equal(t, 0, started)

	// Exactly at the target is still running, with zero left
	assert.False(t, Tick(target, target, d))

	assert.True(t, Tick(target, target.Add(time.Millisecond), d))
	_, started = d.snapshot()
	assert.Equal(t, 1, started)
}

func TestParseTarget(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)

	got, err := ParseTarget("2026-12-05T18:00:00", lisbon)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 12, 5, 18, 0, 0, 0, lisbon)))

	got, err = ParseTarget("2026-12-05T18:00:00+02:00", lisbon)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 12, 5, 16, 0, 0, 0, time.UTC)))

	got, err = ParseTarget("2026-12-05 18:00", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())

	_, err = ParseTarget("", lisbon)
	assert.ErrorIs(t, err, ErrInvalidTarget)
	_, err = ParseTarget("December 5th", lisbon)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestStart_NilDisplay(t *testing.T) {
	h := Start(context.Background(), time.Now().Add(time.Hour), nil)
	assert.Nil(t, h)
	// Methods on a nil handle are safe
	h.Stop()
	assert.False(t, h.Started())
}

func TestStart_TicksThenReachesTerminalState(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 12, 5, 17, 58, 30, 0, time.UTC))
	target := clock.Now().Add(90 * time.Second)
	d := &recordingDisplay{}

	h := Start(context.Background(), target, d, WithInterval(5*time.Millisecond), WithClock(clock.Now))
	require.NotNil(t, h)
	defer h.Stop()

	assert.Eventually(t, func() bool {
		remaining, _ := d.snapshot()
		return len(remaining) >= 1
	}, time.Second, time.Millisecond)

	remaining, _ := d.snapshot()
	assert.Equal(t, Remaining{Minutes: 1, Seconds: 30}, remaining[0])

	clock.Advance(91 * time.Second)

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("countdown did not stop after target passed")
	}
	assert.True(t, h.Started())

	before, started := d.snapshot()
	assert.Equal(t, 1, started)

	// Terminal: nothing changes afterwards
	time.Sleep(20 * time.Millisecond)
	after, startedAfter := d.snapshot()
	assert.Equal(t, len(before), len(after))
	assert.Equal(t, 1, startedAfter)
}

func TestStart_AlreadyPassed(t *testing.T) {
	d := &recordingDisplay{}
	h := Start(context.Background(), time.Now().Add(-time.Minute), d)
	<-h.Done()

	remaining, started := d.snapshot()
	assert.Empty(t, remaining)
	assert.Equal(t, 1, started)
	assert.True(t, h.Started())
}

func TestHandleStop(t *testing.T) {
	d := &recordingDisplay{}
	h := Start(context.Background(), time.Now().Add(time.Hour), d, WithInterval(time.Millisecond))

	assert.Eventually(t, func() bool {
		remaining, _ := d.snapshot()
		return len(remaining) >= 2
	}, time.Second, time.Millisecond)

	h.Stop()
	h.Stop()
	before, _ := d.snapshot()
	time.Sleep(10 * time.Millisecond)
	after, started := d.snapshot()

	assert.Equal(t, len(before), len(after))
	assert.Equal(t, 0, started)
	assert.False(t, h.Started())
}

func TestHandle_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := Start(ctx, time.Now().Add(time.Hour), &recordingDisplay{}, WithInterval(time.Millisecond))

	cancel()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("countdown ignored context cancellation")
	}
}

func TestTimer_SingleActiveCountdown(t *testing.T) {
	timer := NewTimer(WithInterval(time.Millisecond))
	target := time.Now().Add(time.Hour)

	first := &recordingDisplay{}
	second := &recordingDisplay{}

	h1 := timer.Start(context.Background(), target, first)
	h2 := timer.Start(context.Background(), target, second)
	defer timer.Stop()

	require.NotEqual(t, h1.ID(), h2.ID())
	assert.Equal(t, h2, timer.Current())

	select {
	case <-h1.Done():
	default:
		t.Fatal("previous countdown still running after restart")
	}

	before, _ := first.snapshot()
	time.Sleep(10 * time.Millisecond)
	after, _ := first.snapshot()
	assert.Equal(t, len(before), len(after))

	assert.Eventually(t, func() bool {
		remaining, _ := second.snapshot()
		return len(remaining) >= 2
	}, time.Second, time.Millisecond)

	timer.Stop()
	assert.Nil(t, timer.Current())
	<-h2.Done()
}
