package vcell

import (
	"fmt"
	"reflect"
	"unsafe"
)

// conversion reads a value of another tag as T.
type conversion[T any] struct {
	from Type
	fn   func(p *payload) T
}

func convertFrom[T any](from Type, fn func(p *payload) T) conversion[T] {
	return conversion[T]{from: from, fn: fn}
}

// conversions holds at most two read-time sources. n selects one of three
// fixed lookup paths in tryGet.
type conversions[T any] struct {
	n    int
	from [2]Type
	fn   [2]func(p *payload) T
}

// conversionSources records every declared source per target tag.
var conversionSources [typeSentinel][]Type

func makeConversions[T any](tag Type, list []conversion[T]) conversions[T] {
	if len(list) > 2 {
		panic(fmt.Sprintf("vcell: %s declares %d conversions, at most 2 allowed", tag, len(list)))
	}
	var c conversions[T]
	for i, cv := range list {
		if cv.from == tag {
			panic(fmt.Sprintf("vcell: %s declares itself as a conversion source", tag))
		}
		c.from[i] = cv.from
		c.fn[i] = cv.fn
		conversionSources[tag] = append(conversionSources[tag], cv.from)
	}
	c.n = len(list)
	return c
}

// field binds a tag to the payload accessors for its Go type.
type field[T any] struct {
	tag   Type
	load  func(p *payload) T
	store func(p *payload, x T)
	conv  conversions[T]
}

func (f *field[T]) tryGet(v *Value) (T, bool) {
	t := v.Type()
	if t == f.tag {
		return f.load(&v.p), true
	}
	switch f.conv.n {
	case 1:
		if t == f.conv.from[0] {
			return f.conv.fn[0](&v.p), true
		}
	case 2:
		if t == f.conv.from[0] {
			return f.conv.fn[0](&v.p), true
		}
		if t == f.conv.from[1] {
			return f.conv.fn[1](&v.p), true
		}
	}
	var zero T
	return zero, false
}

func (f *field[T]) get(v *Value) (T, error) {
	x, ok := f.tryGet(v)
	if !ok {
		return x, ErrInvalidType
	}
	return x, nil
}

func (f *field[T]) put(v *Value, x T, owns bool) {
	v.ReleaseAndReset()
	f.store(&v.p, x)
	v.setState(f.tag, owns)
}

// Scalar describes a tag stored inline in the payload.
type Scalar[T any] struct {
	f field[T]
}

// Type returns the tag this descriptor reads and writes.
func (s *Scalar[T]) Type() Type { return s.f.tag }

// As returns the stored value, converted if a conversion is declared, or
// the zero value of T.
func (s *Scalar[T]) As(v *Value) T {
	x, _ := s.f.tryGet(v)
	return x
}

// Get is like As but reports ErrInvalidType when neither the tag nor a
// declared conversion matches.
func (s *Scalar[T]) Get(v *Value) (T, error) {
	return s.f.get(v)
}

// Set releases the previous payload and stores x.
func (s *Scalar[T]) Set(v *Value, x T) {
	s.f.put(v, x, true)
}

func newScalar[T comparable](tag Type, load func(*payload) T, store func(*payload, T), conv ...conversion[T]) *Scalar[T] {
	s := &Scalar[T]{f: field[T]{tag: tag, load: load, store: store, conv: makeConversions(tag, conv)}}
	register(tag, kindOps{
		equal: func(a, b *Value) bool {
			return load(&a.p) == load(&b.p)
		},
		format: func(v *Value) string {
			return fmt.Sprint(load(&v.p))
		},
	})
	return s
}

// newOpaque builds a scalar whose payload is an opaque pointer word that
// compares by identity.
func newOpaque[T any](tag Type, load func(*payload) T, store func(*payload, T)) *Scalar[T] {
	s := &Scalar[T]{f: field[T]{tag: tag, load: load, store: store}}
	register(tag, kindOps{
		equal: func(a, b *Value) bool {
			return a.p.ptr == b.p.ptr
		},
		format: func(v *Value) string {
			if v.p.ptr == nil {
				return "nil"
			}
			return fmt.Sprintf("%p", v.p.ptr)
		},
	})
	return s
}

// Ref describes a struct tag held by pointer. An owning cell duplicates
// the struct when copied; a borrowing cell shares it.
type Ref[T comparable] struct {
	f field[*T]
}

func (r *Ref[T]) Type() Type { return r.f.tag }

func (r *Ref[T]) As(v *Value) *T {
	x, _ := r.f.tryGet(v)
	return x
}

func (r *Ref[T]) Get(v *Value) (*T, error) {
	return r.f.get(v)
}

// Set stores x and takes ownership of it.
func (r *Ref[T]) Set(v *Value, x *T) {
	r.f.put(v, x, true)
}

// Wrap stores x without taking ownership.
func (r *Ref[T]) Wrap(v *Value, x *T) {
	r.f.put(v, x, false)
}

// SetValue stores an owned copy of x.
func (r *Ref[T]) SetValue(v *Value, x T) {
	r.f.put(v, &x, true)
}

// Value returns the stored struct, or the zero T when the cell holds
// another tag or a nil pointer.
func (r *Ref[T]) Value(v *Value) T {
	if x := r.As(v); x != nil {
		return *x
	}
	var zero T
	return zero
}

func newRef[T comparable](tag Type) *Ref[T] {
	load := func(p *payload) *T { return (*T)(p.ptr) }
	store := func(p *payload, x *T) { p.ptr = unsafe.Pointer(x) }
	r := &Ref[T]{f: field[*T]{tag: tag, load: load, store: store}}
	register(tag, kindOps{
		retain: func(v *Value) {
			dup := *load(&v.p)
			v.p.ptr = unsafe.Pointer(&dup)
		},
		equal: func(a, b *Value) bool {
			x, y := load(&a.p), load(&b.p)
			if x == nil || y == nil {
				return x == y
			}
			return *x == *y
		},
		format: func(v *Value) string {
			if x := load(&v.p); x != nil {
				return fmt.Sprintf("%+v", *x)
			}
			return "nil"
		},
	})
	return r
}

// Counted describes a reference-counted interface tag. T must be an
// interface type embedding RefCounted.
type Counted[T RefCounted] struct {
	f field[T]
}

func (c *Counted[T]) Type() Type { return c.f.tag }

func (c *Counted[T]) As(v *Value) T {
	x, _ := c.f.tryGet(v)
	return x
}

func (c *Counted[T]) Get(v *Value) (T, error) {
	return c.f.get(v)
}

// Set takes over the caller's reference to x.
func (c *Counted[T]) Set(v *Value, x T) {
	c.f.put(v, x, true)
}

// SetAddRef adds a reference to x so that both the cell and the caller
// hold one.
func (c *Counted[T]) SetAddRef(v *Value, x T) {
	c.f.put(v, x, true)
	if v.p.ptr != nil {
		x.AddRef()
	}
}

// Wrap stores x without taking a reference.
func (c *Counted[T]) Wrap(v *Value, x T) {
	c.f.put(v, x, false)
}

func newCounted[T RefCounted](tag Type) *Counted[T] {
	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		panic(fmt.Sprintf("vcell: %s requires an interface type", tag))
	}
	load := loadIface[T]
	c := &Counted[T]{f: field[T]{tag: tag, load: load, store: storeIface[T]}}
	register(tag, kindOps{
		retain: func(v *Value) {
			load(&v.p).AddRef()
		},
		release: func(v *Value) {
			if v.p.ptr != nil {
				load(&v.p).Release()
			}
		},
		equal: func(a, b *Value) bool {
			return a.p == b.p
		},
		format: func(v *Value) string {
			if v.p.ptr == nil {
				return "nil"
			}
			return fmt.Sprintf("%T@%p", load(&v.p), v.p.ptr)
		},
	})
	return c
}

// ifaceWords mirrors the runtime layout of a non-empty interface.
type ifaceWords struct {
	tab  uintptr
	data unsafe.Pointer
}

func storeIface[T any](p *payload, x T) {
	w := (*ifaceWords)(unsafe.Pointer(&x))
	p.ptr = w.data
	p.num = uint64(w.tab)
}

func loadIface[T any](p *payload) T {
	var x T
	w := (*ifaceWords)(unsafe.Pointer(&x))
	w.tab = uintptr(p.num)
	w.data = p.ptr
	return x
}

// Array describes an array tag stored as a data pointer and a count.
type Array[E any] struct {
	tag  Type
	pool slicePool[E]
}

func (a *Array[E]) Type() Type { return a.tag }

// AsArray returns the stored elements, or nil for any other tag.
func (a *Array[E]) AsArray(v *Value) []E {
	s, _ := a.GetArray(v)
	return s
}

// GetArray returns the stored elements. Arrays have no conversions: any
// other tag reports ErrInvalidType.
func (a *Array[E]) GetArray(v *Value) ([]E, error) {
	if v.Type() != a.tag {
		return nil, ErrInvalidType
	}
	return a.load(v), nil
}

// SetArray stores s and takes ownership of its buffer. The buffer is
// recycled when the cell is released.
func (a *Array[E]) SetArray(v *Value, s []E) {
	a.put(v, s, true)
}

// WrapArray stores s without taking ownership.
func (a *Array[E]) WrapArray(v *Value, s []E) {
	a.put(v, s, false)
}

// New returns a zeroed buffer of n elements suitable for SetArray.
func (a *Array[E]) New(n int) []E {
	s := getSlice(a.pool, n)
	clear(s)
	return s
}

// Free returns a buffer from New that was never handed to SetArray.
func (a *Array[E]) Free(s []E) {
	putSlice(a.pool, s)
}

func (a *Array[E]) put(v *Value, s []E, owns bool) {
	if uint64(len(s)) > 1<<32-1 {
		panic(fmt.Sprintf("vcell: %s of %d elements exceeds the count field", a.tag, len(s)))
	}
	v.ReleaseAndReset()
	v.p.ptr = unsafe.Pointer(unsafe.SliceData(s))
	v.f.setArrayCount(&v.p, uint32(len(s)))
	v.setState(a.tag, owns)
}

func (a *Array[E]) load(v *Value) []E {
	if v.p.ptr == nil {
		return nil
	}
	return unsafe.Slice((*E)(v.p.ptr), v.f.arrayCount(&v.p))
}

func newArray[E any](tag Type, pool slicePool[E]) *Array[E] {
	a := &Array[E]{tag: tag, pool: pool}
	register(tag, kindOps{
		retain: func(v *Value) {
			src := a.load(v)
			var dup []E
			if len(src) == 0 {
				// Empty but non-null: the copy still needs its own buffer.
				dup = make([]E, 0, 1)
			} else {
				dup = getSlice(a.pool, len(src))
				copy(dup, src)
			}
			v.p.ptr = unsafe.Pointer(unsafe.SliceData(dup))
		},
		release: func(v *Value) {
			s := a.load(v)
			if onArrayRelease != nil {
				onArrayRelease(tag, len(s))
			}
			putSlice(a.pool, s)
		},
		equal: func(x, y *Value) bool {
			return x.p.ptr == y.p.ptr && x.f.arrayCount(&x.p) == y.f.arrayCount(&y.p)
		},
		format: func(v *Value) string {
			return fmt.Sprint(a.load(v))
		},
	})
	return a
}

// onArrayRelease observes owned array releases in tests.
var onArrayRelease func(t Type, n int)
