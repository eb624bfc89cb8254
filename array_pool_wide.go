//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package vcell

import "github.com/delaneyj/toolbelt"

func newSlicePool[E any](capacity int) slicePool[E] {
	p := toolbelt.New(func() []E { return make([]E, 0, capacity) })
	return &p
}
