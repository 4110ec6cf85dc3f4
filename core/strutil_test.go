package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtoa(t *testing.T) {
	assert.Equal(t, "0", utoa(0))
	assert.Equal(t, "7", utoa(7))
	assert.Equal(t, "8796227", utoa(8796227))
	assert.Equal(t, "4294967295", utoa(0xffffffff))
}

func TestHex32(t *testing.T) {
	assert.Equal(t, "0x00000000", hex32(0))
	assert.Equal(t, "0x00863843", hex32(8796227))
	assert.Equal(t, "0xcafebab0", hex32(LEDBase))
	assert.Equal(t, "0xffffffff", hex32(0xffffffff))
}
