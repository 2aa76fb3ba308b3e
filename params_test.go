package httpdigest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple list",
			input: "a=1, b=2,c=3",
			want:  []string{"a=1", "b=2", "c=3"},
		},
		{
			name:  "comma inside quoted string",
			input: `realm="a,b", nonce="xyz"`,
			want:  []string{`realm="a,b"`, `nonce="xyz"`},
		},
		{
			name:  "escaped quote inside quoted string",
			input: `username="a\",b", uri="/"`,
			want:  []string{`username="a\",b"`, `uri="/"`},
		},
		{
			name:  "empty tokens are skipped",
			input: "a=1,, ,b=2",
			want:  []string{"a=1", "b=2"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitParams(tt.input))
		})
	}
}

func TestParseParams(t *testing.T) {
	t.Run("unquotes and trims values", func(t *testing.T) {
		params, err := parseParams(`username="Mufasa", nc=00000001 , uri = "/dir/index.html"`)
		require.NoError(t, err)

		assert.Equal(t, "Mufasa", params["username"])
		assert.Equal(t, "00000001", params["nc"])
		assert.Equal(t, "/dir/index.html", params["uri"])
	})

	t.Run("keys are case-insensitive", func(t *testing.T) {
		params, err := parseParams(`UserName="Mufasa", REALM="x"`)
		require.NoError(t, err)

		assert.Equal(t, "Mufasa", params["username"])
		assert.Equal(t, "x", params["realm"])
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		params, err := parseParams(`nonce="first", nonce="second"`)
		require.NoError(t, err)

		assert.Equal(t, "second", params["nonce"])
	})

	t.Run("percent-decodes values", func(t *testing.T) {
		params, err := parseParams(`username="J%C3%A4s%C3%B8n%20Doe"`)
		require.NoError(t, err)

		assert.Equal(t, "Jäsøn Doe", params["username"])
	})

	t.Run("malformed percent escape keeps the raw value", func(t *testing.T) {
		params, err := parseParams(`opaque="100%zz"`)
		require.NoError(t, err)

		assert.Equal(t, "100%zz", params["opaque"])
	})

	t.Run("unescapes quoted-string escapes", func(t *testing.T) {
		params, err := parseParams(`username="a\"b"`)
		require.NoError(t, err)

		assert.Equal(t, `a"b`, params["username"])
	})

	t.Run("token without equals sign", func(t *testing.T) {
		_, err := parseParams(`username="Mufasa", garbage`)
		assert.ErrorIs(t, err, ErrMalformedParameter)
	})
}
