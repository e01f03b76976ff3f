package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultCarouselInterval is how often the featured car changes
const DefaultCarouselInterval = 5 * time.Second

// Carousel rotates the featured car of the dashboard. The index only grows;
// it is reduced modulo the list length when read, so it stays valid when cars
// are added or removed between ticks.
type Carousel struct {
	index    atomic.Uint64
	interval time.Duration
	log      *zap.Logger
}

func NewCarousel(interval time.Duration, log *zap.Logger) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &Carousel{
		interval: interval,
		log:      log.With(zap.String("service", "carousel")),
	}
}

// Advance moves to the next car
func (c *Carousel) Advance() {
	c.index.Add(1)
}

// Index returns the raw position
func (c *Carousel) Index() uint64 {
	return c.index.Load()
}

// Featured returns the current car of cars, or false when cars is empty
func Featured[T any](c *Carousel, cars []T) (T, bool) {
	var zero T
	if len(cars) == 0 {
		return zero, false
	}
	return cars[c.index.Load()%uint64(len(cars))], true
}

// Run advances the carousel every interval until ctx is cancelled
func (c *Carousel) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.log.Info("Carousel started", zap.Duration("interval", c.interval))

	for {
		select {
		case <-ctx.Done():
			c.log.Info("Carousel stopped")
			return
		case <-ticker.C:
			c.Advance()
		}
	}
}
