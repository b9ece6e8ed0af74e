package laminar

import "reflect"

// funcsEqual compares two TransformFunc values by underlying code pointer.
// Go forbids comparing func values directly (other than to nil); this is
// only ever used to tell "the same built-in registered twice" apart from
// "two different callbacks fighting over one id".
func funcsEqual(a, b TransformFunc) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func opFactoriesEqual(a, b OperationFactory) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
