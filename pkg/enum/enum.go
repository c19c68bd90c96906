package enum

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	enumManager = map[reflect.Type]any{}
	mu          sync.RWMutex
)

type enum[T comparable] struct {
	toEnum map[string]T
	values []T
}

// New registers value as a member of its type's closed set and returns it unchanged, so enum
// members can be declared as package-level variables.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	t := v.Type()

	mu.Lock()
	defer mu.Unlock()

	e, ok := enumManager[t].(*enum[T])
	if !ok {
		e = &enum[T]{toEnum: make(map[string]T)}
		enumManager[t] = e
	}

	key := fmt.Sprint(value)
	if _, exists := e.toEnum[key]; !exists {
		e.values = append(e.values, value)
	}
	e.toEnum[key] = value

	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T

	mu.RLock()
	defer mu.RUnlock()

	e, ok := enumManager[reflect.TypeOf(defaultT)].(*enum[T])
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// Values returns the registered members of T in registration order.
func Values[T comparable]() []T {
	var defaultT T

	mu.RLock()
	defer mu.RUnlock()

	e, ok := enumManager[reflect.TypeOf(defaultT)].(*enum[T])
	if !ok {
		return nil
	}

	result := make([]T, len(e.values))
	copy(result, e.values)
	return result
}
