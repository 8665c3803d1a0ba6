package search

import "sync/atomic"

// boolFlag and uint64Flag are thin atomic wrappers so Limits can be shared
// across goroutines without every caller reaching for sync/atomic directly.
// Grounded on thread_search.rs's self.stop: AtomicBool field checked from
// inside the search tree, not only between iterations.
type boolFlag struct{ v atomic.Bool }

func NewBoolFlag() *boolFlag { return &boolFlag{} }

func (f *boolFlag) Set(v bool) { f.v.Store(v) }
func (f *boolFlag) Get() bool  { return f.v.Load() }

type uint64Flag struct{ v atomic.Uint64 }

func NewUint64Flag(initial uint64) *uint64Flag {
	f := &uint64Flag{}
	f.v.Store(initial)
	return f
}

func (f *uint64Flag) Set(v uint64) { f.v.Store(v) }
func (f *uint64Flag) Get() uint64  { return f.v.Load() }
