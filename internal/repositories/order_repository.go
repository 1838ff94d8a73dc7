package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "salonmarket/internal/db"
	"salonmarket/internal/domain/models"
)

type OrderRepo struct {
	DB *sql.DB
}

// CreateWithItems writes the order header and its lines in one transaction.
func (r OrderRepo) CreateWithItems(ctx context.Context, o models.Order) (models.Order, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Order{}, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders
			(customer_id, order_number, status, subtotal, tax_amount, shipping_amount, discount_amount, total_amount, coupon_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, o.CustomerID, o.OrderNumber, o.Status, o.Subtotal, o.TaxAmount, o.ShippingAmount, o.DiscountAmount, o.TotalAmount,
		intdb.NullIfEmpty(o.CouponCode))
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}
	o.ID, err = res.LastInsertId()
	if err != nil {
		return models.Order{}, err
	}

	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		res, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, seller_id, name, variant, quantity, price)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, o.ID, it.ProductID, it.SellerID, it.Name, intdb.NullIfEmpty(it.Variant), it.Quantity, it.Price)
		if err != nil {
			return models.Order{}, fmt.Errorf("insert order item: %w", err)
		}
		it.ID, _ = res.LastInsertId()
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, err
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	return o, nil
}

const orderColumns = `id, customer_id, order_number, status, subtotal, tax_amount, shipping_amount, discount_amount,
	total_amount, coupon_code, created_at`

func scanOrder(row interface{ Scan(...any) error }) (models.Order, error) {
	var o models.Order
	var coupon sql.NullString
	if err := row.Scan(&o.ID, &o.CustomerID, &o.OrderNumber, &o.Status, &o.Subtotal, &o.TaxAmount, &o.ShippingAmount,
		&o.DiscountAmount, &o.TotalAmount, &coupon, &o.CreatedAt); err != nil {
		return models.Order{}, err
	}
	o.CouponCode = intdb.StringOrEmpty(coupon)
	return o, nil
}

// GetByID loads the order with its items.
func (r OrderRepo) GetByID(ctx context.Context, id int64) (models.Order, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Order{}, err
	}
	o, err := scanOrder(db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Order{}, notFound("order", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, order_id, product_id, seller_id, name, variant, quantity, price
		FROM order_items WHERE order_id = ? ORDER BY id
	`, id)
	if err != nil {
		return models.Order{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var it models.OrderItem
		var variant sql.NullString
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.SellerID, &it.Name, &variant, &it.Quantity, &it.Price); err != nil {
			return models.Order{}, err
		}
		it.Variant = intdb.StringOrEmpty(variant)
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

// ListByCustomer returns order headers, newest first.
func (r OrderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id = ? ORDER BY id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// CountBySeller returns how many order lines reference the seller's products.
func (r OrderRepo) CountBySeller(ctx context.Context, sellerID string) (int, error) {
	db, err := conn(r.DB)
	if err != nil {
		return 0, err
	}
	var n int
	err = db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT order_id) FROM order_items WHERE seller_id = ?`, sellerID).Scan(&n)
	return n, err
}
