package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)

	date, err := ParseDateOr("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, date)

	date, err = ParseDateOr("2024-02-29", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDateOr("29/02/2024", fallback)
	assert.Error(t, err)
}

func TestGenerateSaleCode(t *testing.T) {
	code, err := GenerateSaleCode()
	require.NoError(t, err)
	assert.Len(t, code, saleCodeLength)
	assert.Regexp(t, "^["+codeAlphabet+"]+$", code)
}
