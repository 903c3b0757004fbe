package snaplist

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hasbyte1/go-collections/collections"
)

// Constructor builds an empty list behind the [Untyped] interface.
type Constructor func() Untyped

// factoryRegistry is the package-level, goroutine-safe constructor store,
// keyed by element type.
var factoryRegistry struct {
	mu    sync.RWMutex
	ctors map[reflect.Type]Constructor
}

func init() {
	factoryRegistry.ctors = make(map[reflect.Type]Constructor)
	Register[bool]()
	Register[int]()
	Register[int64]()
	Register[uint64]()
	Register[float64]()
	Register[string]()
	Register[any]()
}

// Register makes [NewOf] able to build a *List[T] for reflect.TypeFor[T]().
// Registering the same type again replaces the constructor.
// Safe to call from multiple goroutines.
//
//	snaplist.Register[time.Duration]()
//	l, _ := snaplist.NewOf(reflect.TypeFor[time.Duration]())
//	_ = l.AddValue(3 * time.Second)
func Register[T comparable]() {
	RegisterFunc(reflect.TypeFor[T](), func() Untyped { return New[T]() })
}

// RegisterFunc registers ctor for element type t.
//
// Use it for element types that are not comparable, or that need a custom
// equality or ordering:
//
//	snaplist.RegisterFunc(reflect.TypeFor[[]byte](), func() snaplist.Untyped {
//	    return snaplist.NewFunc(func(a, b []byte) bool { return bytes.Equal(a, b) })
//	})
func RegisterFunc(t reflect.Type, ctor Constructor) {
	factoryRegistry.mu.Lock()
	defer factoryRegistry.mu.Unlock()
	factoryRegistry.ctors[t] = ctor
}

// Registered reports whether a constructor exists for t.
func Registered(t reflect.Type) bool {
	factoryRegistry.mu.RLock()
	defer factoryRegistry.mu.RUnlock()
	_, ok := factoryRegistry.ctors[t]
	return ok
}

// Unregister removes the constructor for t. Intended for use in tests.
func Unregister(t reflect.Type) {
	factoryRegistry.mu.Lock()
	defer factoryRegistry.mu.Unlock()
	delete(factoryRegistry.ctors, t)
}

// NewOf builds an empty list for element type t.
// Returns an error wrapping [collections.ErrUnknownType] if t was never
// registered.
func NewOf(t reflect.Type) (Untyped, error) {
	factoryRegistry.mu.RLock()
	ctor, ok := factoryRegistry.ctors[t]
	factoryRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %v", collections.ErrUnknownType, t)
	}
	return ctor(), nil
}

// NewOfValue builds an empty list whose element type is the dynamic type of
// sample.
func NewOfValue(sample any) (Untyped, error) {
	return NewOf(reflect.TypeOf(sample))
}
