package cache

import (
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/skipor/lru/log"
	. "github.com/skipor/lru/testutil"
)

var _ = Describe("Locked", func() {
	It("same behaviour", func() {
		l := NewLocked(newTestLRU(2))
		l.Set("a", 1)
		l.Set("b", 2)
		_, ok := l.Get("a")
		Expect(ok).To(BeTrue())
		l.Set("c", 3)
		Expect(l.Has("b")).To(BeFalse())
		Expect(l.Keys()).To(Equal([]string{"c", "a"}))
		Expect(l.Len()).To(Equal(2))
	})

	It("evict callback may use wrapped cache", func() {
		var (
			c       *LRU[int]
			evicted []string
		)
		c, err := NewWithEvict[int](testLogger(), Config{Capacity: 1}, func(key string, _ int) {
			Expect(c.Has(key)).To(BeFalse())
			evicted = append(evicted, key)
		})
		Expect(err).NotTo(HaveOccurred())
		l := NewLocked(c)
		l.Set("a", 1)
		l.Set("b", 2)
		Expect(evicted).To(Equal([]string{"a"}))
		Expect(l.Keys()).To(Equal([]string{"b"}))
	})

	It("concurrent access", func() {
		const (
			capacity   = 16
			goroutines = 8
			ops        = 1000
		)
		c, err := New[int](log.NewNop(), Config{Capacity: capacity})
		Expect(err).NotTo(HaveOccurred())
		l := NewLocked(c)
		Byf("Run %v goroutines.", goroutines)
		wg := &sync.WaitGroup{}
		wg.Add(goroutines)
		for g := 0; g < goroutines; g++ {
			go func(g int) {
				defer GinkgoRecover()
				defer wg.Done()
				for i := 0; i < ops; i++ {
					key := fmt.Sprintf("key_%v", (g+i)%(4*capacity))
					if i%2 == 0 {
						l.Set(key, i)
					} else {
						l.Get(key)
					}
					Expect(l.Len()).To(BeNumerically("<=", capacity))
				}
			}(g)
		}
		wg.Wait()
		c.ExpectInvariantsOk()
		Expect(c.Len()).To(Equal(capacity))
	})
})
