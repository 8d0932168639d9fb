package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDGenerator_StrictlyIncreasing(t *testing.T) {
	frozen := time.UnixMilli(1748781000000)
	gen := NewIDGenerator(func() time.Time { return frozen })

	first := gen.Next()
	second := gen.Next()
	third := gen.Next()

	assert.Equal(t, int64(1748781000000), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}
