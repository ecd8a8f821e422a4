package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName_Deterministic(t *testing.T) {
	key, err := Key(40.7128, -74.0060, 100)
	require.NoError(t, err)

	first := Name(key)
	second := Name(key)

	assert.Equal(t, first, second)
	assert.NotEqual(t, UnknownZoneName, first)
	assert.Contains(t, vocabulary, first)
}

func TestName_UnknownForUnparseableKey(t *testing.T) {
	for _, key := range []string{"", "zone", "---", "abc:def"} {
		assert.Equal(t, UnknownZoneName, Name(key))
	}
}

func TestName_AlwaysFromVocabulary(t *testing.T) {
	keys := []string{
		"z100:45321:-62452",
		"z100:0:0",
		"z1000:-12:34",
		"7",
	}
	for _, key := range keys {
		assert.Contains(t, vocabulary, Name(key))
	}
}

func TestName_OrderSensitive(t *testing.T) {
	// Хэш полиномиальный, порядок чисел в ключе значим
	assert.NotEqual(t, Name("z100:1:2"), Name("z100:2:1"))
}

func TestExtractInts(t *testing.T) {
	cases := []struct {
		in   string
		want []int64
		ok   bool
	}{
		{"z100:45321:-62452", []int64{100, 45321, -62452}, true},
		{"z100:0:0", []int64{100, 0, 0}, true},
		{"-5", []int64{-5}, true},
		{"a-5b", []int64{-5}, true},
		{"no digits", nil, false},
		{"", nil, false},
	}
	for _, tc := range cases {
		got, ok := extractInts(tc.in)
		assert.Equalf(t, tc.ok, ok, "input %q", tc.in)
		assert.Equalf(t, tc.want, got, "input %q", tc.in)
	}
}
