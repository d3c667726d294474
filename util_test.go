package ldse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilDivInt(t *testing.T) {
	assert.Equal(t, 3, ceilDivInt(7, 3))
	assert.Equal(t, 2, ceilDivInt(6, 3))
	assert.Equal(t, 0, ceilDivInt(0, 3))
	assert.Equal(t, 0, ceilDivInt(5, 0))
}

func TestSaturateUint32(t *testing.T) {
	assert.Equal(t, uint32(0), saturateUint32(-1))
	assert.Equal(t, uint32(5), saturateUint32(5))
	assert.Equal(t, uint32(maxUint32), saturateUint32(int64(maxUint32)+100))
}

func TestDivisorsOf(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, divisorsOf(12))
	assert.Nil(t, divisorsOf(0))
	assert.Equal(t, []int{1}, divisorsOf(1))
}

func TestDivisorsGreaterThan1(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 6, 12}, divisorsGreaterThan1(12))
	assert.Nil(t, divisorsGreaterThan1(1))
}

func TestDivisorsDescending(t *testing.T) {
	assert.Equal(t, []int{12, 6, 4, 3, 2, 1}, divisorsDescending(12))
}
