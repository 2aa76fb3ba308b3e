package httpdigest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtendedValue(t *testing.T) {
	t.Run("rfc 8187 example", func(t *testing.T) {
		ev, err := ParseExtendedValue("UTF-8''%c2%a3%20and%20%e2%82%ac%20rates")
		require.NoError(t, err)

		assert.Equal(t, "UTF-8", ev.Charset)
		assert.Empty(t, ev.Language)
		assert.Equal(t, []byte("£ and € rates"), ev.Value)
	})

	t.Run("with language tag", func(t *testing.T) {
		ev, err := ParseExtendedValue("UTF-8'en'%C2%A3%20rates")
		require.NoError(t, err)

		assert.Equal(t, "UTF-8", ev.Charset)
		assert.Equal(t, "en", ev.Language)
		assert.Equal(t, []byte("£ rates"), ev.Value)
	})

	t.Run("unencoded attr chars pass through", func(t *testing.T) {
		ev, err := ParseExtendedValue("UTF-8''token")
		require.NoError(t, err)

		assert.Equal(t, []byte("token"), ev.Value)
	})

	t.Run("missing charset delimiter", func(t *testing.T) {
		_, err := ParseExtendedValue("no-quotes-here")
		assert.ErrorIs(t, err, ErrInvalidExtendedValue)
	})

	t.Run("missing language delimiter", func(t *testing.T) {
		_, err := ParseExtendedValue("UTF-8'only-one")
		assert.ErrorIs(t, err, ErrInvalidExtendedValue)
	})

	t.Run("empty charset", func(t *testing.T) {
		_, err := ParseExtendedValue("''value")
		assert.ErrorIs(t, err, ErrInvalidExtendedValue)
	})

	t.Run("truncated percent escape", func(t *testing.T) {
		_, err := ParseExtendedValue("UTF-8''abc%2")
		assert.ErrorIs(t, err, ErrInvalidExtendedValue)
	})

	t.Run("invalid percent escape", func(t *testing.T) {
		_, err := ParseExtendedValue("UTF-8''abc%zz")
		assert.ErrorIs(t, err, ErrInvalidExtendedValue)
	})
}

func TestExtendedValueString(t *testing.T) {
	t.Run("encodes non attr chars", func(t *testing.T) {
		ev := ExtendedValue{Charset: "UTF-8", Value: []byte("Jäsøn Doe")}
		assert.Equal(t, "UTF-8''J%C3%A4s%C3%B8n%20Doe", ev.String())
	})

	t.Run("language tag is carried", func(t *testing.T) {
		ev := ExtendedValue{Charset: "UTF-8", Language: "en", Value: []byte("rate")}
		assert.Equal(t, "UTF-8'en'rate", ev.String())
	})

	t.Run("round trip", func(t *testing.T) {
		ev := ExtendedValue{Charset: "UTF-8", Language: "fi", Value: []byte("£ and € rates")}

		parsed, err := ParseExtendedValue(ev.String())
		require.NoError(t, err)
		assert.Equal(t, ev, parsed)
	})
}
