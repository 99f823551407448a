package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickturnNext(t *testing.T) {
	first := MakeFirstTickturn()
	assert.Equal(t, uint32(0), first.GetSeq())
	assert.Equal(t, time.Duration(0), first.GetNow())

	second := first.Next(16 * time.Millisecond)
	assert.Equal(t, uint32(1), second.GetSeq())
	assert.Equal(t, 16*time.Millisecond, second.GetNow())
	assert.NotEqual(t, first.GetID(), second.GetID())

	// turns are values
	assert.Equal(t, uint32(0), first.GetSeq())
}

func TestTickDuration(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, TickDuration(10))
}
