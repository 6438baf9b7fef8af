package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOtpCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateOtpCode()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, code, 100000)
		assert.Less(t, code, 1000000)
	}
}
