package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountMap_Inc(t *testing.T) {
	m := NewCountMap()
	m.Inc("10.0.0.2")
	m.Inc("10.0.0.1")
	m.Inc("10.0.0.2")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"10.0.0.2", "10.0.0.1"}, m.Keys())

	n, ok := m.Get("10.0.0.2")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = m.Get("10.0.0.9")
	assert.False(t, ok)
}

func TestCountMap_ZeroValue(t *testing.T) {
	var m CountMap
	m.Inc("GET")
	n, _ := m.Get("GET")
	assert.Equal(t, 1, n)

	var nilMap *CountMap
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Keys())
}

func TestCountMap_Top(t *testing.T) {
	tests := []struct {
		name  string
		input [][2]interface{}
		n     int
		want  []string
	}{
		{
			name:  "orders by count descending",
			input: [][2]interface{}{{"a", 1}, {"b", 3}, {"c", 2}},
			n:     3,
			want:  []string{"b", "c", "a"},
		},
		{
			name:  "ties keep first appearance order",
			input: [][2]interface{}{{"a", 2}, {"b", 5}, {"c", 2}, {"d", 2}},
			n:     3,
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "returns fewer when not enough keys",
			input: [][2]interface{}{{"a", 1}},
			n:     3,
			want:  []string{"a"},
		},
		{
			name: "empty map",
			n:    3,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCountMap()
			for _, kv := range tt.input {
				m.Add(kv[0].(string), kv[1].(int))
			}
			top := m.Top(tt.n)
			assert.Equal(t, tt.want, append([]string{}, top.Keys()...))
			top.Each(func(k string, c int) {
				orig, _ := m.Get(k)
				assert.Equal(t, orig, c)
			})
		})
	}
}

func TestCountMap_JSON(t *testing.T) {
	t.Run("marshals in insertion order", func(t *testing.T) {
		m := NewCountMap()
		m.Add("POST", 1)
		m.Add("GET", 7)
		m.Add("<odd>", 2)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, `{"POST":1,"GET":7,"<odd>":2}`, string(data))
	})

	t.Run("empty map marshals to empty object", func(t *testing.T) {
		data, err := json.Marshal(NewCountMap())
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("unmarshal keeps document order", func(t *testing.T) {
		var m CountMap
		err := json.Unmarshal([]byte(`{"z": 1, "a": 9, "m": 4}`), &m)
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
		n, _ := m.Get("a")
		assert.Equal(t, 9, n)
	})

	t.Run("rejects non-object", func(t *testing.T) {
		var m CountMap
		assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &m))
	})

	t.Run("rejects non-numeric counts", func(t *testing.T) {
		var m CountMap
		assert.Error(t, json.Unmarshal([]byte(`{"a":"x"}`), &m))
	})
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "summary", OutcomeSummary.String())
	assert.Equal(t, "no_data", OutcomeNoData.String())
	assert.Equal(t, "access_error", OutcomeAccessError.String())
	assert.Equal(t, "field_error", OutcomeFieldError.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}

func TestFields_Map(t *testing.T) {
	f := Fields{IP: "1.2.3.4", User: "-", Date: "d", Request: "GET / HTTP/1.1", Status: "200", Size: "-", Referer: "r", UserAgent: "ua", Duration: "-"}
	m := f.Map()
	assert.Len(t, m, 9)
	assert.Equal(t, "-", m["size"])
	assert.Equal(t, "-", m["duration"])
	assert.Equal(t, "ua", m["user_agent"])
}
