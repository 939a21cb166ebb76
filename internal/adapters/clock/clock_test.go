package clock_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.revet.dev/revet/internal/adapters/clock"
)

func TestTicking_AdvancesOncePerInterval(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := clock.NewTicking(time.Minute)
		c.Start()
		defer c.Stop()

		require.Equal(t, uint64(0), c.Read())

		time.Sleep(time.Minute)
		synctest.Wait()
		assert.Equal(t, uint64(1), c.Read())

		time.Sleep(3 * time.Minute)
		synctest.Wait()
		assert.Equal(t, uint64(4), c.Read())
	})
}

func TestTicking_StopHaltsAdvance(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := clock.NewTicking(time.Minute)
		c.Start()

		time.Sleep(time.Minute)
		synctest.Wait()
		require.Equal(t, uint64(1), c.Read())

		c.Stop()
		synctest.Wait()

		time.Sleep(10 * time.Minute)
		synctest.Wait()
		assert.Equal(t, uint64(1), c.Read())
	})
}

func TestTicking_NotStartedDoesNotAdvance(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := clock.NewTicking(time.Minute)
		defer c.Stop()

		time.Sleep(10 * time.Minute)
		synctest.Wait()
		assert.Equal(t, uint64(0), c.Read())
	})
}

func TestTicking_StopTwice(t *testing.T) {
	c := clock.NewTicking(time.Minute)
	c.Stop()
	c.Stop()
}

func TestManual(t *testing.T) {
	c := clock.NewManual(7)
	assert.Equal(t, uint64(7), c.Read())

	c.Advance(3)
	assert.Equal(t, uint64(10), c.Read())
}
