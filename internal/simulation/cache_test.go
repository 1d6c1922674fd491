package simulation

import (
	"testing"
	"time"

	"growth-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKey(t *testing.T) {
	p := model.SimulationParams{StartingCapital: 40000, DailyRate: 0.1, HorizonDays: 5}
	morning := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 1, 21, 30, 0, 0, time.UTC)

	key := RunKey(morning, p)
	assert.Len(t, key, 16)
	assert.Equal(t, key, RunKey(evening, p), "time of day is ignored")
	assert.NotEqual(t, key, RunKey(morning.AddDate(0, 0, 1), p))

	p2 := p
	p2.WeeklyTakeoutFraction = 0.5
	assert.NotEqual(t, key, RunKey(morning, p2))
}

func TestRunCache(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewRunCache(time.Minute)
	c.now = func() time.Time { return now }

	res := New().RunHorizon(now, model.SimulationParams{StartingCapital: 1, HorizonDays: 3})
	c.Set("a", res)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Same(t, res, got)
	_, ok = c.Get("b")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok, "expired")
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Prune())
	assert.Zero(t, c.Len())
}

func TestNilRunCache(t *testing.T) {
	var c *RunCache
	c.Set("a", &Result{})
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Prune())
}

func TestRunCacheFromEnv(t *testing.T) {
	t.Setenv("SIMULATION_CACHE_TTL", "0")
	assert.Nil(t, RunCacheFromEnv())

	t.Setenv("SIMULATION_CACHE_TTL", "30s")
	c := RunCacheFromEnv()
	require.NotNil(t, c)
	assert.Equal(t, 30*time.Second, c.ttl)

	t.Setenv("SIMULATION_CACHE_TTL", "soon")
	c = RunCacheFromEnv()
	require.NotNil(t, c)
	assert.Equal(t, DefaultCacheTTL, c.ttl)
}

func TestRunCacheJanitor(t *testing.T) {
	c := NewRunCache(time.Minute)

	cr, err := c.Janitor(DefaultPruneSchedule)
	require.NoError(t, err)
	require.Len(t, cr.Entries(), 1)

	_, err = c.Janitor("every now and then")
	assert.Error(t, err)
}
