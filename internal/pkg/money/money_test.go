//go:build unit

package money_test

import (
	"encoding/json"
	"testing"

	"pos-gateway/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		cents   int64
		wantErr bool
	}{
		{name: "two decimal places", input: "100.00", cents: 10000},
		{name: "no decimal places", input: "25", cents: 2500},
		{name: "single decimal place", input: "9.5", cents: 950},
		{name: "negative amount", input: "-3.25", cents: -325},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := money.Parse(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.cents, m.Cents())
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := money.New(10000)
	b := money.New(2550)

	assert.Equal(t, int64(12550), a.Add(b).Cents())
	assert.Equal(t, int64(7450), a.Sub(b).Cents())
	assert.Equal(t, int64(7650), b.MulQty(3).Cents())
	assert.True(t, money.New(0).IsZero())
	assert.True(t, b.Sub(a).IsNegative())
}

func TestPercent(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		rate  float64
		want  int64
	}{
		{name: "exact division", cents: 10000, rate: 10, want: 1000},
		{name: "rounds half up", cents: 1050, rate: 5, want: 53}, // 52.5
		{name: "rounds down below half", cents: 1040, rate: 5, want: 52},
		{name: "zero rate", cents: 10000, rate: 0, want: 0},
		{name: "full rate", cents: 12345, rate: 100, want: 12345},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, money.New(c.cents).Percent(c.rate).Cents())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "100.00", money.New(10000).String())
	assert.Equal(t, "0.05", money.New(5).String())
	assert.Equal(t, "-3.25", money.New(-325).String())
	assert.Equal(t, "0.00", money.New(0).String())
}

func TestJSON(t *testing.T) {
	t.Run("marshals as decimal string", func(t *testing.T) {
		b, err := json.Marshal(money.New(2500))
		require.NoError(t, err)
		assert.Equal(t, `"25.00"`, string(b))
	})

	t.Run("unmarshals JSON number", func(t *testing.T) {
		var m money.Money
		require.NoError(t, json.Unmarshal([]byte(`100.5`), &m))
		assert.Equal(t, int64(10050), m.Cents())
	})

	t.Run("unmarshals decimal string", func(t *testing.T) {
		var m money.Money
		require.NoError(t, json.Unmarshal([]byte(`"100.50"`), &m))
		assert.Equal(t, int64(10050), m.Cents())
	})

	t.Run("rejects non-numeric string", func(t *testing.T) {
		var m money.Money
		require.ErrorIs(t, json.Unmarshal([]byte(`"lots"`), &m), money.ErrInvalidAmount)
	})
}
