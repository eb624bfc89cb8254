package vcell

var (
	int32Pool   = newSlicePool[int32](16)
	float32Pool = newSlicePool[float32](16)
	float64Pool = newSlicePool[float64](16)
	pointPool   = newSlicePool[Point](8)
)

// slicePool is the subset of the toolbelt pool used for array buffers.
type slicePool[E any] interface {
	Get() []E
	Put([]E)
}

func getSlice[E any](pool slicePool[E], n int) []E {
	if n <= 0 {
		return nil
	}
	s := pool.Get()
	if cap(s) < n {
		return make([]E, n)
	}
	return s[:n]
}

func putSlice[E any](pool slicePool[E], s []E) {
	if cap(s) == 0 {
		return
	}
	pool.Put(s[:0])
}
