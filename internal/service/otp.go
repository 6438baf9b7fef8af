package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	otpMin = 100000
	otpMax = 1000000
)

// GenerateOtpCode samples a 6-digit code uniformly from [100000, 1000000).
func GenerateOtpCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin))
	if err != nil {
		return 0, fmt.Errorf("generate otp: %w", err)
	}
	return otpMin + int(n.Int64()), nil
}
