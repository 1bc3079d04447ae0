package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationRunsToCompletion(t *testing.T) {
	var op Operation
	assert.Equal(t, Idle, op.State())

	op.Start()
	assert.Equal(t, Running, op.State())
	assert.Equal(t, 0, op.Percent())

	ticks := 0
	for !op.Tick() {
		ticks++
		assert.Less(t, ticks, 100, "operation never completed")
	}

	assert.Equal(t, Done, op.State())
	assert.Equal(t, 100, op.Percent())
	assert.Equal(t, 100/Step-1, ticks)
}

func TestCancelReturnsToIdle(t *testing.T) {
	var op Operation
	op.Start()
	op.Tick()
	op.Tick()

	op.Cancel()
	assert.Equal(t, Idle, op.State())
	assert.Equal(t, 0, op.Percent())
}

func TestStaleTickAfterCancelIsIgnored(t *testing.T) {
	var op Operation
	op.Start()
	op.Tick()
	op.Cancel()

	// A timer callback landing after the cancel must not revive it
	assert.False(t, op.Tick())
	assert.Equal(t, Idle, op.State())
	assert.Equal(t, 0, op.Percent())
}

func TestTickAfterDoneIsIgnored(t *testing.T) {
	var op Operation
	op.Start()
	for !op.Tick() {
	}

	assert.False(t, op.Tick())
	assert.Equal(t, Done, op.State())
	assert.Equal(t, 100, op.Percent())
}

func TestCancelWhenIdleOrDoneIsNoOp(t *testing.T) {
	var op Operation
	op.Cancel()
	assert.Equal(t, Idle, op.State())

	op.Start()
	for !op.Tick() {
	}
	op.Cancel()
	assert.Equal(t, Done, op.State())
}

func TestStartResetsProgress(t *testing.T) {
	var op Operation
	op.Start()
	op.Tick()
	op.Tick()

	op.Start()
	assert.Equal(t, Running, op.State())
	assert.Equal(t, 0, op.Percent())
}

func TestReset(t *testing.T) {
	var op Operation
	op.Start()
	for !op.Tick() {
	}

	op.Reset()
	assert.Equal(t, Idle, op.State())
	assert.Equal(t, 0, op.Percent())
}
