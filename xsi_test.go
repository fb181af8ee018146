package xjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsXSINilTrue(t *testing.T) {
	assert.True(t, isXSINilTrue([]attribute{{Name: "xsi:nil", Value: "true"}}))
	assert.False(t, isXSINilTrue([]attribute{{Name: "xsi:nil", Value: "false"}}))
	assert.False(t, isXSINilTrue([]attribute{{Name: "other", Value: "true"}}))
	assert.False(t, isXSINilTrue(nil))
}
