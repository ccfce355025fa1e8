package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/profit-simulator/pkg/money"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRound_HalfUpNoBancario(t *testing.T) {
	cases := map[string]string{
		"0.125":   "0.13",
		"0.135":   "0.14",
		"2.675":   "2.68",
		"14.375":  "14.38",
		"-0.125":  "-0.13",
		"13.889":  "13.89",
		"20.5555": "20.56",
		"5":       "5",
	}
	for in, want := range cases {
		got := money.Round(d(in))
		assert.True(t, got.Equal(d(want)), "Round(%s) = %s, se esperaba %s", in, got, want)
	}
}

func TestQuantize_Patrones(t *testing.T) {
	got, err := money.Quantize(d("1.23456"), "0.001")
	require.NoError(t, err)
	assert.Equal(t, "1.235", got.StringFixed(3))

	got, err = money.Quantize(d("1.005"), "0.01")
	require.NoError(t, err)
	assert.Equal(t, "1.01", got.StringFixed(2))

	got, err = money.Quantize(d("2.5"), "1")
	require.NoError(t, err)
	assert.Equal(t, "3", got.String())
}

func TestQuantize_PatronInvalido(t *testing.T) {
	_, err := money.Quantize(d("1"), "abc")
	assert.ErrorIs(t, err, money.ErrInvalidOperation)

	_, err = money.Quantize(d("1"), "0")
	assert.ErrorIs(t, err, money.ErrInvalidOperation)
}

func TestParse_NoFinitos(t *testing.T) {
	for _, in := range []string{"NaN", "inf", "-Infinity", "", "12,5", "abc"} {
		_, err := money.Parse(in)
		assert.ErrorIs(t, err, money.ErrInvalidOperation, "entrada %q", in)
	}
	v, err := money.Parse(" 19.90 ")
	require.NoError(t, err)
	assert.True(t, v.Equal(d("19.9")))
}

func TestPercent_Exacto(t *testing.T) {
	assert.True(t, money.Percent(d("200"), d("2.5")).Equal(d("5")))
	assert.True(t, money.Percent(d("200"), d("30.55419921875")).Equal(d("61.1083984375")))
}

func TestRatio_DenominadorCero(t *testing.T) {
	assert.True(t, money.Ratio(d("10"), decimal.Zero).Equal(decimal.Zero))
	assert.True(t, money.Ratio(d("37"), d("180")).Equal(d("20.56")))
}

func TestFixed_EscalaConstante(t *testing.T) {
	assert.Equal(t, "200.00", money.Fixed(d("200")))
	assert.Equal(t, "0.00", money.Fixed(decimal.Zero))
	assert.Equal(t, "-60.00", money.Fixed(d("-60")))
	assert.Equal(t, "20.56", money.Fixed(d("20.555")))
	assert.Equal(t, "2.000", money.FixedQuantity(d("2")))
	assert.Equal(t, "1.235", money.FixedQuantity(d("1.2345")))
}
