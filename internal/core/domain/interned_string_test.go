package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("include")
	b := domain.NewInternedString("include")

	assert.Equal(t, a, b)
	assert.Equal(t, "include", a.String())
	assert.Zero(t, a.Compare(b))
	assert.Negative(t, a.Compare(domain.NewInternedString("src")))
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
	assert.False(t, domain.NewInternedString("").IsZero())

	data, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.JSONEq(t, `""`, string(data))
}

func TestInternedString_JSONField(t *testing.T) {
	type entry struct {
		Dir domain.InternedString `json:"dir"`
	}

	data, err := json.Marshal(entry{Dir: domain.NewInternedString("src/lib")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dir":"src/lib"}`, string(data))

	var decoded entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "src/lib", decoded.Dir.String())
}

func TestNewInternedStrings(t *testing.T) {
	out := domain.NewInternedStrings([]string{"a.h", "b.h", "a.h"})

	require.Len(t, out, 3)
	assert.Equal(t, "b.h", out[1].String())
	assert.Equal(t, out[0].Value(), out[2].Value())
	assert.Empty(t, domain.NewInternedStrings(nil))
}
