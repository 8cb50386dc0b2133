package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomString(t *testing.T) {
	s := RandomString(8)
	assert.Len(t, s, 8)
	assert.Regexp(t, `^[0-9A-Za-z]{8}$`, s)
	assert.NotEqual(t, s, RandomString(8))
	assert.Empty(t, RandomString(0))
}
