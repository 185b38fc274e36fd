package envelopestate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 5, 16, 18, 0, 0, 0, time.UTC)

func tp(offset time.Duration) *time.Time {
	t := base.Add(offset)
	return &t
}

func fullTimestamps() Timestamps {
	return Timestamps{
		TeasingAt: tp(-4 * time.Hour),
		Clue1At:   tp(-2 * time.Hour),
		Clue2At:   tp(-1 * time.Hour),
		StreetAt:  tp(-40 * time.Minute),
		NumberAt:  tp(-20 * time.Minute),
		OpenedAt:  tp(0),
	}
}

func TestComputeProgression(t *testing.T) {
	ts := fullTimestamps()

	cases := []struct {
		now  time.Time
		want State
	}{
		{base.Add(-5 * time.Hour), StateLocked},
		{base.Add(-4 * time.Hour), StateTeasing},
		{base.Add(-90 * time.Minute), StateClue1},
		{base.Add(-50 * time.Minute), StateClue2},
		{base.Add(-30 * time.Minute), StateStreet},
		{base.Add(-10 * time.Minute), StateNumber},
		{base, StateOpen},
		{base.Add(time.Hour), StateOpen},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Compute(ts, tc.now), "now=%s", tc.now)
	}
}

// Durum now'a göre monoton: now arttıkça durum asla gerilemez.
func TestComputeMonotonicInNow(t *testing.T) {
	ts := fullTimestamps()
	prev := StateLocked
	for now := base.Add(-6 * time.Hour); now.Before(base.Add(time.Hour)); now = now.Add(7 * time.Minute) {
		state := Compute(ts, now)
		assert.GreaterOrEqual(t, int(state), int(prev))
		prev = state
	}
}

// Ara timestamp'ler eksikken daha ileri bir timestamp geçmişse katılımcı
// geriletilmez: geriye doğru tarama en ileri eşleşen durumu bulur.
func TestComputeSkipsMissingIntermediates(t *testing.T) {
	ts := Timestamps{
		TeasingAt: tp(-4 * time.Hour),
		StreetAt:  tp(-40 * time.Minute),
	}
	assert.Equal(t, StateStreet, Compute(ts, base))
	assert.Equal(t, StateTeasing, Compute(ts, base.Add(-time.Hour)))
}

func TestComputeEmptyTimestamps(t *testing.T) {
	assert.Equal(t, StateLocked, Compute(Timestamps{}, base))
}

func TestComputeExactBoundary(t *testing.T) {
	ts := fullTimestamps()
	// Geçiş anında yeni durum geçerli (<= now).
	assert.Equal(t, StateOpen, Compute(ts, *ts.OpenedAt))
}

func TestNextRevealScenarioTeasing(t *testing.T) {
	// teasing geçmişte, clue1 gelecekte, now arada.
	ts := Timestamps{
		TeasingAt: tp(-time.Hour),
		Clue1At:   tp(30 * time.Minute),
	}
	state := Compute(ts, base)
	require.Equal(t, StateTeasing, state)

	next := NextReveal(ts, state, base)
	require.NotNil(t, next)
	assert.Equal(t, StateClue1, next.State)
	assert.Equal(t, *ts.Clue1At, next.At)
	assert.Equal(t, int64(30*60), next.InSeconds)
}

func TestNextRevealCountdownReachesZero(t *testing.T) {
	ts := Timestamps{
		TeasingAt: tp(-time.Hour),
		Clue1At:   tp(10 * time.Minute),
	}
	prev := int64(1<<62 - 1)
	for _, now := range []time.Time{base, base.Add(3 * time.Minute), base.Add(9 * time.Minute)} {
		next := NextReveal(ts, Compute(ts, now), now)
		require.NotNil(t, next)
		assert.Less(t, next.InSeconds, prev)
		assert.GreaterOrEqual(t, next.InSeconds, int64(0))
		prev = next.InSeconds
	}
	// Geçiş anında tam 0.
	atTransition := NextReveal(ts, StateTeasing, *ts.Clue1At)
	require.NotNil(t, atTransition)
	assert.Equal(t, int64(0), atTransition.InSeconds)
}

func TestNextRevealAbsentTarget(t *testing.T) {
	// street geçmişte, number/opened yok: tahmin yok.
	ts := Timestamps{
		Clue1At:  tp(-3 * time.Hour),
		Clue2At:  tp(-2 * time.Hour),
		StreetAt: tp(-time.Hour),
	}
	state := Compute(ts, base)
	require.Equal(t, StateStreet, state)
	assert.Nil(t, NextReveal(ts, state, base))
}

func TestNextRevealTerminal(t *testing.T) {
	ts := fullTimestamps()
	assert.Nil(t, NextReveal(ts, StateOpen, base))
}

func TestNonMonotonic(t *testing.T) {
	ok := fullTimestamps()
	assert.False(t, NonMonotonic(ok))

	bad := Timestamps{
		Clue1At: tp(-time.Hour),
		Clue2At: tp(-2 * time.Hour),
	}
	assert.True(t, NonMonotonic(bad))

	// Eksik aralar sıra ihlali sayılmaz.
	sparse := Timestamps{
		TeasingAt: tp(-4 * time.Hour),
		NumberAt:  tp(-20 * time.Minute),
	}
	assert.False(t, NonMonotonic(sparse))
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "LOCKED", StateLocked.String())
	assert.Equal(t, "CLUE_1", StateClue1.String())
	assert.Equal(t, "OPEN", StateOpen.String())
}
