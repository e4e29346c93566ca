//go:build debug
// +build debug

// Gomega should not be dependency in non-debug build.

package cache

import (
	"errors"
	"log"

	"github.com/facebookgo/stackerr"
	. "github.com/onsi/gomega"
)

var _ = func() (_ struct{}) {
	RegisterFailHandler(GomegaFailHandler)
	return
}()

func GomegaFailHandler(message string, callerSkip ...int) {
	skip := 1
	if len(callerSkip) > 0 {
		skip += callerSkip[0]
	}
	log.Fatal("FATAL: invariants are broken:", stackerr.WrapSkip(errors.New(message), skip))
}

func (c *LRU[V]) checkInvariants() {
	r := &c.recency
	ExpectWithOffset(1, len(c.index)).To(BeNumerically("<=", c.capacity), "capacity overflow")
	if len(c.index) == 0 {
		ExpectWithOffset(1, r.head).To(Equal(none), "empty cache has head")
		ExpectWithOffset(1, r.tail).To(Equal(none), "empty cache has tail")
		return
	}
	ExpectWithOffset(1, r.at(r.head).newer).To(Equal(none), "head has newer")
	ExpectWithOffset(1, r.at(r.tail).older).To(Equal(none), "tail has older")
	var linked int
	newer := none
	for h := r.head; h != none; h = r.at(h).older {
		linked++
		ExpectWithOffset(1, linked).To(BeNumerically("<=", len(c.index)), "chain is longer than index")
		e := r.at(h)
		ExpectWithOffset(1, e.newer).To(Equal(newer), "%s: broken newer link", e.key)
		ih, ok := c.index[e.key]
		ExpectWithOffset(1, ok).To(BeTrue(), "%s: no index ref to entry", e.key)
		ExpectWithOffset(1, ih).To(Equal(h), "%s: index refs to another slot", e.key)
		newer = h
	}
	ExpectWithOffset(1, newer).To(Equal(r.tail), "chain end is not tail")
	ExpectWithOffset(1, linked).To(Equal(len(c.index)), "too many items in index")
}
