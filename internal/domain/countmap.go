package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// CountMap is a string→count mapping that remembers the order in which keys
// were first added. Iteration, JSON encoding, and Top all follow that order.
type CountMap struct {
	keys   []string
	counts map[string]int
}

// NewCountMap creates an empty CountMap
func NewCountMap() *CountMap {
	return &CountMap{counts: make(map[string]int)}
}

// Inc adds one to key, appending it if it has not been seen.
func (m *CountMap) Inc(key string) {
	m.Add(key, 1)
}

// Add adds n to key, appending it if it has not been seen.
func (m *CountMap) Add(key string, n int) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	if _, ok := m.counts[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.counts[key] += n
}

// Get returns the count for key.
func (m *CountMap) Get(key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	n, ok := m.counts[key]
	return n, ok
}

// Len returns the number of distinct keys.
func (m *CountMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *CountMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls fn for every key in insertion order.
func (m *CountMap) Each(fn func(key string, count int)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.counts[k])
	}
}

// Clone returns an independent copy.
func (m *CountMap) Clone() *CountMap {
	out := NewCountMap()
	m.Each(out.Add)
	return out
}

// Top returns a new CountMap with the n keys of highest count, descending.
// Equal counts keep insertion order.
func (m *CountMap) Top(n int) *CountMap {
	keys := m.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return m.counts[keys[i]] > m.counts[keys[j]]
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}

	top := NewCountMap()
	for _, k := range keys {
		top.Add(k, m.counts[k])
	}
	return top
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *CountMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		// Encode appends a newline
		buf.Truncate(buf.Len() - 1)
		fmt.Fprintf(&buf, ":%d", m.counts[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the document.
func (m *CountMap) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON for count map")
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return fmt.Errorf("count map must be a JSON object, got %s", res.Type)
	}

	out := NewCountMap()
	var err error
	res.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("count for %q is not a number", key.String())
			return false
		}
		out.Add(key.String(), int(value.Int()))
		return true
	})
	if err != nil {
		return err
	}
	*m = *out
	return nil
}
