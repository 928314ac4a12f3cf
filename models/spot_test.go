package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSet(t *testing.T) {
	s := NewTagSet("cosy", "", "bar", "cosy")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("bar"))
	assert.False(t, s.Has("Bar"))
	assert.Equal(t, []string{"bar", "cosy"}, s.Sorted())
}

func TestTagSetJSON(t *testing.T) {
	data, err := json.Marshal(NewTagSet("terrasse", "cafe"))
	require.NoError(t, err)
	assert.JSONEq(t, `["cafe","terrasse"]`, string(data))

	var back TagSet
	require.NoError(t, json.Unmarshal([]byte(`["a","a","b"]`), &back))
	assert.Equal(t, NewTagSet("a", "b"), back)
}

func TestRawRecordValue(t *testing.T) {
	r := RawRecord{"a", "b"}
	assert.Equal(t, "b", r.Value(1))
	assert.Equal(t, "", r.Value(2))
	assert.Equal(t, "", r.Value(-1))
}

func TestParseFieldRole(t *testing.T) {
	role, err := ParseFieldRole("tags")
	require.NoError(t, err)
	assert.Equal(t, RoleTags, role)

	_, err = ParseFieldRole("Tags")
	assert.Error(t, err)
}
