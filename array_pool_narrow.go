//go:build !(amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm)

package vcell

import "sync"

// toolbelt does not build where int is 32 bits wide, so narrow targets
// keep the same Get/Put shape over sync.Pool directly.
type syncSlicePool[E any] struct {
	pool sync.Pool
}

func (p *syncSlicePool[E]) Get() []E { return p.pool.Get().([]E) }

func (p *syncSlicePool[E]) Put(s []E) { p.pool.Put(s) }

func newSlicePool[E any](capacity int) slicePool[E] {
	return &syncSlicePool[E]{pool: sync.Pool{New: func() any { return make([]E, 0, capacity) }}}
}
