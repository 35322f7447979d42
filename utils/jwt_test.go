package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, bad := range []string{"", "Bear", "Basic abc", "Bearer "} {
		_, err := ExtractTokenFromHeader(bad)
		assert.Error(t, err, bad)
	}
}
