// Package randompkg provides random fixtures for tests.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max
// using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

func pick(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(set[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random lowercase string of length n.
func String(n int) string {
	return pick(alphabet, n)
}

// Cedula generates a random 8-digit account identifier.
func Cedula() string {
	return pick(digits, 8)
}

// Name generates a random person name.
func Name() string {
	return String(6)
}

// Email generates a random .com email.
func Email() string {
	return fmt.Sprintf("%s@mail.com", String(10))
}

// AmountMultiple generates a random amount of minSteps to maxSteps units of
// 10000, as the raw text the ledger takes.
func AmountMultiple(minSteps, maxSteps int) string {
	steps := int64(minSteps) + Intn(maxSteps-minSteps+1)

	return fmt.Sprintf("%d", steps*10000)
}
