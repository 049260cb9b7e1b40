//go:build unit

package money_test

import (
	"testing"

	"creator-sponsorship/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	t.Run("renders two decimals", func(t *testing.T) {
		out := money.Format(1250, "USD", language.English)
		assert.Contains(t, out, "12.50")
	})

	t.Run("unknown currency falls back to USD", func(t *testing.T) {
		out := money.Format(500, "???", language.English)
		assert.Contains(t, out, "5.00")
	})
}

func TestNormalizeCode(t *testing.T) {
	code, err := money.NormalizeCode(" eur ")
	require.NoError(t, err)
	assert.Equal(t, "EUR", code)

	code, err = money.NormalizeCode("")
	require.NoError(t, err)
	assert.Equal(t, money.DefaultCurrency, code)

	_, err = money.NormalizeCode("NOPE")
	assert.Error(t, err)
}
