package nvp

import "strconv"

// DuplicateTag separates a repeated field name from its occurrence number.
// The second HISTORY field of a response is stored as "HISTORY#2". Gateway
// field names never contain the tag; a received name that does is still
// stored under a key of its own, see Add.
const DuplicateTag = "#"

// Entry is a single name/value pair
type Entry struct {
	Name  string
	Value string
}

// Map is an insertion ordered set of fields read from one NVP string. Fields
// are claimed as typed objects consume them; whatever is left unclaimed is
// extension data.
type Map struct {
	keys    []string
	values  map[string]string
	claimed map[string]bool
	seen    map[string]int
	names   map[string]string
	dups    map[string][]string
}

// NewMap returns an empty map
func NewMap() *Map {
	return &Map{
		values:  make(map[string]string),
		claimed: make(map[string]bool),
		seen:    make(map[string]int),
		names:   make(map[string]string),
		dups:    make(map[string][]string),
	}
}

// Add stores a field. Repeated names are kept under a tagged key so that
// every occurrence stays retrievable. A key already taken by a received
// name such as "A#2" is never overwritten; the new field is tagged again
// until its key is free.
func (m *Map) Add(name string, value string) {
	m.seen[name]++
	key := name
	if n := m.seen[name]; n > 1 {
		key = name + DuplicateTag + strconv.Itoa(n)
	}
	for base, n := key, 2; m.Has(key); n++ {
		key = base + DuplicateTag + strconv.Itoa(n)
	}

	m.keys = append(m.keys, key)
	m.values[key] = value
	m.names[key] = name
	if m.seen[name] > 1 {
		m.dups[name] = append(m.dups[name], key)
	}
}

// Origin returns the field name key was received as, and whether it was a
// second or later occurrence of that name.
func (m *Map) Origin(key string) (name string, duplicate bool) {
	name, ok := m.names[key]
	if !ok {
		return key, false
	}
	for _, k := range m.dups[name] {
		if k == key {
			return name, true
		}
	}
	return name, false
}

// Get returns the value for name without claiming it
func (m *Map) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Value returns the value for name or "" without claiming it
func (m *Map) Value(name string) string {
	return m.values[name]
}

// Has reports whether name is present
func (m *Map) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Take returns the value for name and marks it claimed. Taking a field that
// is already claimed returns its value again.
func (m *Map) Take(name string) string {
	v, ok := m.values[name]
	if ok {
		m.claimed[name] = true
	}
	return v
}

// Claim marks name as consumed without reading it
func (m *Map) Claim(name string) {
	if _, ok := m.values[name]; ok {
		m.claimed[name] = true
	}
}

// IsClaimed reports whether name has been taken
func (m *Map) IsClaimed(name string) bool {
	return m.claimed[name]
}

// Len is the number of stored fields, duplicates included
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns every stored key in insertion order, or nil when the map is
// empty.
func (m *Map) Keys() []string {
	if len(m.keys) == 0 {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Entries returns every stored field in insertion order
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Entry{Name: k, Value: m.values[k]})
	}
	return out
}

// Unclaimed returns the fields nothing has taken, in insertion order
func (m *Map) Unclaimed() []Entry {
	var out []Entry
	for _, k := range m.keys {
		if !m.claimed[k] {
			out = append(out, Entry{Name: k, Value: m.values[k]})
		}
	}
	return out
}

// Occurrences is how many times name was added
func (m *Map) Occurrences(name string) int {
	return m.seen[name]
}

// Duplicates returns the values of the second and later occurrences of name
func (m *Map) Duplicates(name string) []string {
	var out []string
	for _, k := range m.dups[name] {
		out = append(out, m.values[k])
	}
	return out
}
