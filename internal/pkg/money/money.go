package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// Money is an amount in satang (hundredths of a baht). The store API carries
// amounts as Numeric(10,2); integer cents keep the gateway's arithmetic exact.
type Money struct {
	cents int64
}

var ErrInvalidAmount = errors.New("invalid money amount")

func New(cents int64) Money {
	return Money{cents: cents}
}

// Parse accepts a decimal amount such as "100.00".
func Parse(s string) (Money, error) {
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return fromFloat(f), nil
}

func fromFloat(f float64) Money {
	return Money{cents: int64(math.Round(f * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) MulQty(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// Percent returns rate% of the amount, rounded half away from zero to the
// cent. Matches the backend's Numeric(10,2) quantization for 2dp rates.
func (m Money) Percent(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate / 100))}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON emits the amount as a 2dp decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON tolerates both JSON numbers and decimal strings; the store
// API serializes Numeric columns either way depending on the endpoint.
func (m *Money) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return ErrInvalidAmount
	}
	*m = fromFloat(f)
	return nil
}
