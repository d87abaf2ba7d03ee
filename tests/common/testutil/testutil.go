package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Field returns a mutation that sets (or, with a nil value, removes) a
// key in a request map.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// DtoMap converts a request DTO into a map and applies the mutation, so
// validation grids can tweak single fields without new struct literals.
func DtoMap(t *testing.T, dto any, mutate func(m map[string]any)) map[string]any {
	t.Helper()

	data, err := json.Marshal(dto)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	if mutate != nil {
		mutate(m)
	}
	return m
}
