package service

import (
	"sync"
	"time"
)

// IDGenerator hands out millisecond timestamps, bumped forward when two
// requests land in the same millisecond so ids stay unique.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
