package cart

import (
	"errors"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/pkg/money"
)

var (
	ErrStockLimitExceeded = errors.New("requested quantity exceeds stock")
	ErrLineNotFound       = errors.New("cart line not found")
)

// Line is one product snapshot plus the requested quantity. The quantity is
// kept in [1, StockQuantity] at every mutation, not just at submit time.
type Line struct {
	product  catalog.Product
	quantity int
}

func (l Line) Product() catalog.Product { return l.product }
func (l Line) Quantity() int            { return l.quantity }

func (l Line) Total() money.Money {
	return l.product.SellingPrice.MulQty(l.quantity)
}

// Cart holds at most one line per product id, in insertion order. It is plain
// in-memory state: no side effects, no network, recoverable errors only.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// ReconstructLine restores a line as captured, skipping the stock checks that
// guard Add and SetQuantity. A restored line may sit above a ceiling that
// moved underneath it; ValidateStock is the recheck for that.
func ReconstructLine(p catalog.Product, quantity int) Line {
	return Line{product: p, quantity: quantity}
}

// Reconstruct restores a cart from captured lines.
func Reconstruct(lines []Line) *Cart {
	out := make([]Line, len(lines))
	copy(out, lines)
	return &Cart{lines: out}
}

// Add creates a line with quantity 1 for a new product, or bumps an existing
// line by one. A bump past the product's stock ceiling is rejected without
// mutating the line.
func (c *Cart) Add(p catalog.Product) error {
	for i := range c.lines {
		if c.lines[i].product.ProductID == p.ProductID {
			if c.lines[i].quantity+1 > c.lines[i].product.StockQuantity {
				return ErrStockLimitExceeded
			}
			c.lines[i].quantity++
			return nil
		}
	}

	if p.StockQuantity < 1 {
		return ErrStockLimitExceeded
	}
	c.lines = append(c.lines, Line{product: p, quantity: 1})
	return nil
}

// SetQuantity clamps the requested quantity to a minimum of 1 and rejects any
// value above the line's stock ceiling, leaving the prior quantity in place.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	for i := range c.lines {
		if c.lines[i].product.ProductID == productID {
			if quantity < 1 {
				quantity = 1
			}
			if quantity > c.lines[i].product.StockQuantity {
				return ErrStockLimitExceeded
			}
			c.lines[i].quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove deletes the line unconditionally; an absent id is a no-op.
func (c *Cart) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].product.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy; callers cannot mutate cart state through it.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal is recomputed on every call, never cached across mutations.
func (c *Cart) Subtotal() money.Money {
	var sum money.Money
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// ValidateStock re-checks every line against its snapshot ceiling. Called
// again at submit time to catch carts mutated against stale stock data.
func (c *Cart) ValidateStock() error {
	for _, l := range c.lines {
		if l.quantity > l.product.StockQuantity {
			return ErrStockLimitExceeded
		}
	}
	return nil
}
