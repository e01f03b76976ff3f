package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCarouselFeatured(t *testing.T) {
	c := NewCarousel(time.Second, zap.NewNop())
	cars := []string{"a", "b", "c"}

	got, ok := Featured(c, cars)
	require.True(t, ok)
	assert.Equal(t, "a", got)

	c.Advance()
	c.Advance()
	got, _ = Featured(c, cars)
	assert.Equal(t, "c", got)

	c.Advance()
	got, _ = Featured(c, cars)
	assert.Equal(t, "a", got)

	// shrinking the list keeps the index in range
	got, _ = Featured(c, cars[:2])
	assert.Equal(t, "b", got)

	_, ok = Featured(c, []string{})
	assert.False(t, ok)
}

func TestCarouselDefaultInterval(t *testing.T) {
	c := NewCarousel(0, zap.NewNop())
	assert.Equal(t, DefaultCarouselInterval, c.interval)
}

func TestCarouselRunStopsOnCancel(t *testing.T) {
	c := NewCarousel(5*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return c.Index() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("carousel did not stop")
	}
}
