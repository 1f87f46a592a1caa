package value

import "reflect"

// StrictEqual compares two values by identity: scalars by kind and value
// (all numeric types compare as float64), null with null, Undefined with
// Undefined, and arrays or objects by reference.
func StrictEqual(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindString:
		return a.(string) == b.(string)
	case KindNumber:
		fa, _ := AsNumber(a)
		fb, _ := AsNumber(b)
		return fa == fb
	case KindArray, KindObject:
		return sameReference(a, b)
	default:
		return reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.TypeOf(a).Comparable() && a == b
	}
}

func sameReference(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsNil() || vb.IsNil() {
		return va.IsNil() && vb.IsNil()
	}
	if va.Kind() == reflect.Slice && va.Len() != vb.Len() {
		return false
	}
	return va.UnsafePointer() == vb.UnsafePointer()
}

// IsSame reports structural equality. Objects are equal when they have the
// same number of keys and every key of a is the same in b; keys are not
// compared the other way around.
func IsSame(a, b any) bool {
	switch KindOf(a) {
	case KindString, KindNumber, KindBool, KindNull, KindUndefined:
		return StrictEqual(a, b)
	}
	switch KindOf(b) {
	case KindString, KindNumber, KindBool, KindNull, KindUndefined:
		return false
	}

	if left, ok := a.([]any); ok {
		right, ok := b.([]any)
		if !ok || len(left) != len(right) {
			return false
		}
		for i := range left {
			if !IsSame(left[i], right[i]) {
				return false
			}
		}
		return true
	}
	if _, ok := b.([]any); ok {
		return false
	}

	left, okLeft := a.(map[string]any)
	right, okRight := b.(map[string]any)
	if !okLeft || !okRight {
		return StrictEqual(a, b)
	}
	if len(left) != len(right) {
		return false
	}
	for key, entry := range left {
		if !IsSame(entry, Lookup(right, key)) {
			return false
		}
	}
	return true
}
