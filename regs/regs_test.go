package regs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	var f File
	f.Set(5, 0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), f.Get(5))
	assert.Equal(t, uint32(0), f.Get(0))
}

func TestNamedAccessors(t *testing.T) {
	var f File
	f.SetR0(100)
	f.SetR1(7)
	f.SetR2(2)
	f.SetR3(14)

	assert.Equal(t, uint32(100), f.R0())
	assert.Equal(t, uint32(7), f.R1())
	assert.Equal(t, uint32(2), f.R2())
	assert.Equal(t, uint32(14), f.R3())
}

func TestSnapshot(t *testing.T) {
	var f File
	f.Set(0, 1)
	f.Set(15, 2)
	snap := f.Snapshot()
	assert.Equal(t, uint32(1), snap[0])
	assert.Equal(t, uint32(2), snap[15])
}
