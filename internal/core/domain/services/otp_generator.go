package services

import (
	"math/rand/v2"
	"strconv"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// OtpGenerator produces single-use verification codes for the job
// handshake. Implementations return a 6-digit decimal string uniformly
// distributed over [100000, 999999].
//
// The code proves physical presence over a side channel; it is not a secret
// token, so pseudo-random generation is sufficient.
type OtpGenerator interface {
	Generate() string
}

// RandomOtpGenerator is the production OtpGenerator backed by math/rand/v2.
type RandomOtpGenerator struct{}

// NewRandomOtpGenerator creates a RandomOtpGenerator.
func NewRandomOtpGenerator() RandomOtpGenerator {
	return RandomOtpGenerator{}
}

// Generate returns a uniformly random 6-digit decimal string.
func (RandomOtpGenerator) Generate() string {
	return strconv.Itoa(rand.IntN(otpMax-otpMin+1) + otpMin) //nolint:gosec // presence code, not a secret
}
