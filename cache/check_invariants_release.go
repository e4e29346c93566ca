//go:build !debug
// +build !debug

package cache

func (c *LRU[V]) checkInvariants() {}
