package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/state"
	"salonmarket/internal/utils"
)

// CartView is the cart as returned to clients: lines, coupon and priced totals.
type CartView struct {
	state.CartState
	Totals domain.Totals `json:"totals"`
	Policy string        `json:"discountPolicy"`
}

// CartService loads a cart from Redis, reduces it and saves it back.
type CartService struct {
	Carts     CartStore
	Products  ProductStore
	Orders    OrderStore
	Policy    domain.DiscountPolicy
	RequestID string
}

func (s CartService) view(cart state.CartState) CartView {
	return CartView{CartState: cart, Totals: cart.Totals(s.Policy), Policy: s.Policy.String()}
}

func (s CartService) Get(ctx context.Context, userID int64) (CartView, error) {
	cart, err := s.Carts.Get(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	return s.view(cart), nil
}

// apply runs fn over the stored cart and persists the result.
func (s CartService) apply(ctx context.Context, userID int64, fn func(state.CartState) (state.CartState, error)) (CartView, error) {
	cart, err := s.Carts.Get(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	next, err := fn(cart)
	if err != nil {
		return s.view(cart), err
	}
	if err := s.Carts.Save(ctx, userID, next); err != nil {
		return CartView{}, err
	}
	return s.view(next), nil
}

// AddItem prices the line from the catalog, so clients cannot choose their own price.
func (s CartService) AddItem(ctx context.Context, userID int64, productID, variant string, quantity int) (CartView, error) {
	if quantity < 1 {
		return CartView{}, domain.ValidationError{Field: "quantity", Msg: "must be at least 1"}
	}
	p, err := s.Products.GetByID(ctx, strings.TrimSpace(productID))
	if err != nil {
		return CartView{}, err
	}
	if p.StockQuantity <= 0 {
		return CartView{}, domain.ConflictError{Resource: "product", Msg: "out of stock"}
	}

	line := domain.CartLine{
		ID:        uuid.NewString(),
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.EffectivePrice(),
		Quantity:  quantity,
		Variant:   strings.TrimSpace(variant),
		SellerID:  p.SellerID,
		ImageURL:  p.ImageURL,
	}
	v, err := s.apply(ctx, userID, func(c state.CartState) (state.CartState, error) {
		next := state.ReduceCart(c, state.AddToCart{Line: line})
		if err := checkStock(next, p); err != nil {
			return c, err
		}
		return next, nil
	})
	if err == nil {
		utils.LogEvent(s.RequestID, "cart", "add_item", fmt.Sprintf("user_id=%d product_id=%s qty=%d", userID, p.ID, quantity))
	}
	return v, err
}

// checkStock compares the cart's total quantity of p, across variants, with its stock.
func checkStock(c state.CartState, p models.Product) error {
	n := 0
	for _, l := range c.Lines {
		if l.ProductID == p.ID {
			n += l.Quantity
		}
	}
	if n > p.StockQuantity {
		return domain.ConflictError{Resource: "product", Msg: fmt.Sprintf("only %d in stock", p.StockQuantity)}
	}
	return nil
}

func requireLine(c state.CartState, lineID string) error {
	if _, ok := c.Line(lineID); !ok {
		return domain.NotFoundError{Resource: "cart line"}
	}
	return nil
}

// UpdateQuantity removes the line when quantity <= 0.
func (s CartService) UpdateQuantity(ctx context.Context, userID int64, lineID string, quantity int) (CartView, error) {
	return s.apply(ctx, userID, func(c state.CartState) (state.CartState, error) {
		line, ok := c.Line(lineID)
		if !ok {
			return c, domain.NotFoundError{Resource: "cart line"}
		}
		next := state.ReduceCart(c, state.UpdateQuantity{LineID: lineID, Quantity: quantity})
		if quantity <= 0 {
			return next, nil
		}
		p, err := s.Products.GetByID(ctx, line.ProductID)
		if err != nil {
			return c, err
		}
		if err := checkStock(next, p); err != nil {
			return c, err
		}
		return next, nil
	})
}

func (s CartService) RemoveItem(ctx context.Context, userID int64, lineID string) (CartView, error) {
	return s.apply(ctx, userID, func(c state.CartState) (state.CartState, error) {
		if err := requireLine(c, lineID); err != nil {
			return c, err
		}
		return state.ReduceCart(c, state.RemoveFromCart{LineID: lineID}), nil
	})
}

func (s CartService) Clear(ctx context.Context, userID int64) (CartView, error) {
	if err := s.Carts.Delete(ctx, userID); err != nil {
		return CartView{}, err
	}
	return s.view(state.ReduceCart(state.CartState{}, state.ClearCart{})), nil
}

// ApplyCoupon returns domain.ErrUnknownCoupon with the unchanged cart for codes not in the table.
func (s CartService) ApplyCoupon(ctx context.Context, userID int64, code string) (CartView, error) {
	return s.apply(ctx, userID, func(c state.CartState) (state.CartState, error) {
		if _, ok := domain.LookupCoupon(code); !ok {
			return c, domain.ErrUnknownCoupon
		}
		return state.ReduceCart(c, state.ApplyCoupon{Code: code}), nil
	})
}

func (s CartService) RemoveCoupon(ctx context.Context, userID int64) (CartView, error) {
	return s.apply(ctx, userID, func(c state.CartState) (state.CartState, error) {
		return state.ReduceCart(c, state.RemoveCoupon{}), nil
	})
}

// Checkout turns the cart into a pending order and empties the cart.
func (s CartService) Checkout(ctx context.Context, userID int64) (models.Order, error) {
	cart, err := s.Carts.Get(ctx, userID)
	if err != nil {
		return models.Order{}, err
	}
	if len(cart.Lines) == 0 {
		return models.Order{}, domain.ValidationError{Field: "cart", Msg: "cart is empty"}
	}

	t := cart.Totals(s.Policy)
	order := models.Order{
		CustomerID:     userID,
		OrderNumber:    NewOrderNumber(),
		Status:         "pending",
		Subtotal:       t.Subtotal,
		TaxAmount:      t.Tax,
		ShippingAmount: t.Shipping,
		DiscountAmount: t.Discount,
		TotalAmount:    t.Total,
	}
	if cart.Coupon != nil {
		order.CouponCode = cart.Coupon.Code
	}
	for _, l := range cart.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: l.ProductID,
			SellerID:  l.SellerID,
			Name:      l.Name,
			Variant:   l.Variant,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		})
	}

	order, err = s.Orders.CreateWithItems(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	if err := s.Carts.Delete(ctx, userID); err != nil {
		utils.LogWarn(s.RequestID, "cart", "checkout", fmt.Sprintf("order %s placed but cart not cleared", order.OrderNumber), err)
	}
	utils.LogEvent(s.RequestID, "cart", "checkout", fmt.Sprintf("user_id=%d order=%s total=%s", userID, order.OrderNumber, utils.FormatMoney(order.TotalAmount)))
	return order, nil
}

// NewOrderNumber returns "ORD-" followed by 8 upper-case hex digits.
func NewOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(id[:8])
}
