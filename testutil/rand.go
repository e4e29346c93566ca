package testutil

import (
	"fmt"
	"math/rand"

	"github.com/google/gofuzz"
	. "github.com/onsi/ginkgo"
)

var RandSource = rand.NewSource(GinkgoRandomSeed())
var Rand = rand.New(RandSource)
var Fuzzer = func() *fuzz.Fuzzer {
	f := fuzz.New()
	f.RandSource(RandSource)
	return f
}()
var Fuzz = Fuzzer.Fuzz

// RandKey returns one of n keys with common prefix.
// Small n makes key collisions frequent.
func RandKey(n int) string {
	return fmt.Sprintf("key_%v", Rand.Intn(n))
}
