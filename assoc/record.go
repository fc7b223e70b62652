package assoc

import "fmt"

// Record is a key with two associated values. It is immutable once created.
type Record[K, V1, V2 comparable] struct {
	key    K
	value1 V1
	value2 V2
}

func NewRecord[K, V1, V2 comparable](key K, value1 V1, value2 V2) Record[K, V1, V2] {
	return Record[K, V1, V2]{
		key:    key,
		value1: value1,
		value2: value2,
	}
}

func (r Record[K, V1, V2]) Key() K {
	return r.key
}

func (r Record[K, V1, V2]) Value1() V1 {
	return r.value1
}

func (r Record[K, V1, V2]) Value2() V2 {
	return r.value2
}

// String formats the record as "Key: <k>, Value1: <v1>, Value2: <v2>"
func (r Record[K, V1, V2]) String() string {
	return fmt.Sprintf("Key: %v, Value1: %v, Value2: %v", r.key, r.value1, r.value2)
}
