package ldse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, newConfigError("bad mapping").Error(), "bad mapping")
	assert.Contains(t, newRangeError("split_id out of range", 5, 3).Error(), "5")
	assert.Contains(t, newLayoutViolationError("capacity exceeded").Error(), "capacity exceeded")
}

func TestErrorsAreDistinguishableByType(t *testing.T) {
	var err error = newConfigError("x")
	_, isConfig := err.(*ConfigError)
	assert.True(t, isConfig)

	err = newRangeError("x", 0, 1)
	_, isRange := err.(*RangeError)
	assert.True(t, isRange)

	err = newLayoutViolationError("x")
	_, isViolation := err.(*LayoutViolationError)
	assert.True(t, isViolation)
}
