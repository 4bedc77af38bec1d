package error

import (
	"reflect"
)

// Tag identifies a concrete error type. Two tags are equal iff they were
// derived from the same concrete type. The zero Tag identifies nothing.
type Tag struct {
	t reflect.Type
}

// TagOf returns the tag of T. For an interface type the tag never matches a
// stored payload, since payloads are always tagged with their concrete type.
func TagOf[T any]() Tag { return Tag{t: reflect.TypeFor[T]()} }

func tagOfValue(v any) Tag { return Tag{t: reflect.TypeOf(v)} }

// IsZero reports whether the tag identifies no type.
func (t Tag) IsZero() bool { return t.t == nil }

func (t Tag) String() string {
	if t.t == nil {
		return "<none>"
	}

	return t.t.String()
}

func (t Tag) isInterface() bool { return t.t != nil && t.t.Kind() == reflect.Interface }
