package structures

// OrderedMap is a string-keyed map that iterates in insertion order.
// Replacing a value keeps the key's original position.
type OrderedMap[V any] struct {
	hash map[string]V
	keys []string
}

func NewOrderedMap[V any]() OrderedMap[V] {
	return OrderedMap[V]{
		hash: make(map[string]V),
	}
}

// Get returns the value for a key. If the key does not exist, the second
// return parameter will be false.
func (m *OrderedMap[V]) Get(key string) (value V, ok bool) {
	value, ok = m.hash[key]
	return
}

// GetOrDefault returns the value for a key. If the key does not exist,
// returns the default value instead.
func (m *OrderedMap[V]) GetOrDefault(key string, defaultValue V) V {
	if value, ok := m.hash[key]; ok {
		return value
	}
	return defaultValue
}

// Set sets the value for a key. If the key already existed, the old value
// is returned along with true.
func (m *OrderedMap[V]) Set(key string, value V) (V, bool) {
	oldValue, exists := m.hash[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.hash[key] = value
	return oldValue, exists
}

// Len returns the number of elements in the map.
func (m *OrderedMap[V]) Len() int {
	return len(m.hash)
}

// Keys returns all the keys in the order they were inserted.
func (m *OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}
