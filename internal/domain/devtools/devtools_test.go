package devtools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedJournal(max int) *Journal {
	j := NewJournal(max)
	j.now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 15, 0, time.UTC) }
	return j
}

func TestJournal_FormatsAndTrims(t *testing.T) {
	j := fixedJournal(2)
	j.Log("one")
	j.Log("two")
	j.Log("three")

	assert.Equal(t, []string{"[09:30:15] two", "[09:30:15] three"}, j.Lines())
	assert.Equal(t, "[09:30:15] two\n[09:30:15] three", j.Text())
}

func TestTimer_WorkChain(t *testing.T) {
	j := fixedJournal(0)
	tm := NewTimer(j, time.Hour, nil)

	// tick 1 -> workB(2) -> 2+5 = 7 => lucky
	tm.randN = func(int) int { return 5 }
	tm.tick()
	// tick 2 -> workB(4) -> 4+0 = 4
	tm.randN = func(int) int { return 0 }
	tm.tick()

	got := j.Lines()
	require.Len(t, got, 2)
	assert.Equal(t, "[09:30:15] Lucky seven hit: 7", got[0])
	assert.Equal(t, "[09:30:15] Tick value: 4", got[1])
	assert.Equal(t, int64(2), tm.Ticks())
}

func TestTimer_StartStopIdempotent(t *testing.T) {
	j := fixedJournal(0)
	tm := NewTimer(j, time.Hour, nil)

	assert.False(t, tm.Stop(), "stop on stopped timer")
	assert.True(t, tm.Start(), "first start")
	assert.False(t, tm.Start(), "second start")
	assert.True(t, tm.Running())
	assert.True(t, tm.Stop(), "first stop")
	assert.False(t, tm.Stop(), "second stop")

	assert.Equal(t, []string{"[09:30:15] Timer started", "[09:30:15] Timer stopped"}, j.Lines())
}

func TestTimer_TicksWhileRunning(t *testing.T) {
	j := NewJournal(0)
	tm := NewTimer(j, 2*time.Millisecond, nil)
	tm.Start()
	defer tm.Stop()

	assert.Eventually(t, func() bool { return tm.Ticks() >= 2 }, 2*time.Second, time.Millisecond)
}

func TestSampleTransform(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 30, 15, 123_000_000, time.FixedZone("X", -3*3600))
	s := RunSample(fixedJournal(0), "Pico", 5, at)

	assert.Equal(t, "Pico", s.Name)
	assert.Equal(t, 5, s.SnapshotEnergy)
	assert.Equal(t, "2026-10-19T12:30:15.123Z", s.ISOTime)
}

func TestCaughtError(t *testing.T) {
	j := fixedJournal(0)
	assert.Error(t, CaughtError(j))

	got := j.Lines()
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Caught error: ")
}
