package wire

import (
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
)

// Kind tells how many elements a Multiple was decoded from.
type Kind int

const (
	KindEmpty Kind = iota
	KindOne
	KindMany
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindOne:
		return "one"
	case KindMany:
		return "many"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Multiple is the decoded form of a repeated element. SOAP serialises zero
// elements as nil, one as a bare object and several as an array; Multiple
// keeps which of the three arrived and always exposes an ordered slice.
type Multiple[T any] struct {
	kind  Kind
	items []T
}

func Empty[T any]() Multiple[T] {
	return Multiple[T]{kind: KindEmpty}
}

func One[T any](v T) Multiple[T] {
	return Multiple[T]{kind: KindOne, items: []T{v}}
}

func Many[T any](vs []T) Multiple[T] {
	items := make([]T, len(vs))
	copy(items, vs)
	return Multiple[T]{kind: KindMany, items: items}
}

func (m Multiple[T]) Kind() Kind {
	return m.kind
}

func (m Multiple[T]) Len() int {
	return len(m.items)
}

// Items returns a copy of the elements in wire order.
func (m Multiple[T]) Items() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// FromWire normalises a repeated wire field. nil becomes Empty, an Object
// becomes One, a []any becomes Many. Anything else, including a nil element
// inside an array, is ErrUnexpectedShape. wrap converts every element.
func FromWire[T any](v any, wrap func(Object) (T, error)) (Multiple[T], error) {
	switch t := v.(type) {
	case nil:
		return Empty[T](), nil
	case Object:
		if t == nil {
			return Empty[T](), nil
		}
		item, err := wrap(t)
		if err != nil {
			return Multiple[T]{}, err
		}
		return One(item), nil
	case []any:
		items := make([]T, 0, len(t))
		for i, e := range t {
			obj, ok := e.(Object)
			if !ok || obj == nil {
				return Multiple[T]{}, fmt.Errorf("%w: element %d is %T", constants.ErrUnexpectedShape, i, e)
			}
			item, err := wrap(obj)
			if err != nil {
				return Multiple[T]{}, err
			}
			items = append(items, item)
		}
		return Multiple[T]{kind: KindMany, items: items}, nil
	default:
		return Multiple[T]{}, fmt.Errorf("%w: %T", constants.ErrUnexpectedShape, v)
	}
}

// Objects is FromWire without a conversion step.
func Objects(v any) (Multiple[Object], error) {
	return FromWire(v, func(o Object) (Object, error) { return o, nil })
}

// Arity is the encoding contract of a repeated field when it is written back.
type Arity int

const (
	// ArityList always writes an array, even for one element.
	ArityList Arity = iota
	// ArityCollapse writes a single element as a bare object.
	ArityCollapse
)

// ToWire flattens items back into the ambiguous wire form. No items yields
// nil so the field is left out of the request.
func ToWire[T any](items []T, unwrap func(T) Object, arity Arity) any {
	switch {
	case len(items) == 0:
		return nil
	case len(items) == 1 && arity == ArityCollapse:
		return unwrap(items[0])
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = unwrap(item)
	}
	return out
}
