// Package state holds the application state of a session as plain values
// and the pure reducers that move it forward. Reducers never mutate their input.
package state

import (
	"salonmarket/internal/domain"
)

type CartState struct {
	Lines  []domain.CartLine `json:"lines"`
	Coupon *domain.Coupon    `json:"coupon,omitempty"`
}

// Totals prices the cart.
func (s CartState) Totals(policy domain.DiscountPolicy) domain.Totals {
	return domain.ComputeTotals(s.Lines, s.Coupon, policy)
}

// Line returns the line with id.
func (s CartState) Line(id string) (domain.CartLine, bool) {
	for _, l := range s.Lines {
		if l.ID == id {
			return l, true
		}
	}
	return domain.CartLine{}, false
}

type CartAction interface{ cartAction() }

// AddToCart merges into an existing line with the same product and variant.
type AddToCart struct{ Line domain.CartLine }

type RemoveFromCart struct{ LineID string }

// UpdateQuantity removes the line when Quantity <= 0.
type UpdateQuantity struct {
	LineID   string
	Quantity int
}

type ClearCart struct{}

// ApplyCoupon is ignored when the code is not in the coupon table.
type ApplyCoupon struct{ Code string }

type RemoveCoupon struct{}

func (AddToCart) cartAction()      {}
func (RemoveFromCart) cartAction() {}
func (UpdateQuantity) cartAction() {}
func (ClearCart) cartAction()      {}
func (ApplyCoupon) cartAction()    {}
func (RemoveCoupon) cartAction()   {}

// ReduceCart applies a to s and returns the new state.
func ReduceCart(s CartState, a CartAction) CartState {
	next := CartState{Lines: cloneLines(s.Lines), Coupon: cloneCoupon(s.Coupon)}

	switch act := a.(type) {
	case AddToCart:
		if act.Line.Quantity < 1 {
			return next
		}
		for i := range next.Lines {
			if next.Lines[i].ProductID == act.Line.ProductID && next.Lines[i].Variant == act.Line.Variant {
				next.Lines[i].Quantity += act.Line.Quantity
				return next
			}
		}
		next.Lines = append(next.Lines, act.Line)

	case RemoveFromCart:
		next.Lines = removeLine(next.Lines, act.LineID)

	case UpdateQuantity:
		if act.Quantity <= 0 {
			next.Lines = removeLine(next.Lines, act.LineID)
			return next
		}
		for i := range next.Lines {
			if next.Lines[i].ID == act.LineID {
				next.Lines[i].Quantity = act.Quantity
			}
		}

	case ClearCart:
		next = CartState{}

	case ApplyCoupon:
		if c, ok := domain.LookupCoupon(act.Code); ok {
			next.Coupon = &c
		}

	case RemoveCoupon:
		next.Coupon = nil
	}
	return next
}

func removeLine(lines []domain.CartLine, id string) []domain.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

func cloneLines(in []domain.CartLine) []domain.CartLine {
	if in == nil {
		return nil
	}
	out := make([]domain.CartLine, len(in))
	copy(out, in)
	return out
}

func cloneCoupon(c *domain.Coupon) *domain.Coupon {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
