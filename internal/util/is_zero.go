package util

import "reflect"

// IsZeroVal reports whether v holds zero value of its type.
// v type should be comparable.
func IsZeroVal(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}

// MergeNonZero copies every non zero field of *override into *def.
// Both should be pointers to structs of the same type.
func MergeNonZero(def, override interface{}) {
	defVal := reflect.ValueOf(def).Elem()
	overrideVal := reflect.ValueOf(override).Elem()
	for i, end := 0, defVal.NumField(); i < end; i++ {
		if f := overrideVal.Field(i); !IsZeroVal(f) {
			defVal.Field(i).Set(f)
		}
	}
}
