package repositories

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	intdb "salonmarket/internal/db"
	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
)

type ProductRepo struct {
	DB *sql.DB
}

const productColumns = `id, seller_id, seller_name, name, description, brand, category, price, sale_price,
	rating, total_reviews, is_featured, stock_quantity, image_url, tags, created_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var desc, image sql.NullString
	var sale decimal.NullDecimal
	var tags string
	if err := row.Scan(&p.ID, &p.SellerID, &p.SellerName, &p.Name, &desc, &p.Brand, &p.Category, &p.Price, &sale,
		&p.Rating, &p.TotalReviews, &p.IsFeatured, &p.StockQuantity, &image, &tags, &p.CreatedAt); err != nil {
		return models.Product{}, err
	}
	p.Description = intdb.StringOrEmpty(desc)
	p.ImageURL = intdb.StringOrEmpty(image)
	p.Tags = intdb.SplitList(tags)
	if sale.Valid {
		v := sale.Decimal
		p.SalePrice = &v
	}
	return p, nil
}

// List returns every product in insertion order. Filtering happens in the catalog service.
func (r ProductRepo) List(ctx context.Context) ([]models.Product, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ProductRepo) GetByID(ctx context.Context, id string) (models.Product, error) {
	db, err := conn(r.DB)
	if err != nil {
		return models.Product{}, err
	}
	p, err := scanProduct(db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Product{}, notFound("product", err)
	}
	return p, nil
}

// ListBySeller backs the seller dashboard.
func (r ProductRepo) ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	db, err := conn(r.DB)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT `+productColumns+` FROM products WHERE seller_id = ? ORDER BY id`, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// Create inserts a seller's product. Ratings and featuring start at zero.
func (r ProductRepo) Create(ctx context.Context, p models.Product) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO products (id, seller_id, seller_name, name, description, brand, category, price, sale_price,
			stock_quantity, image_url, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.SellerID, p.SellerName, p.Name, intdb.NullIfEmpty(p.Description), p.Brand, p.Category, p.Price,
		nullDecimal(p.SalePrice), p.StockQuantity, intdb.NullIfEmpty(p.ImageURL), intdb.JoinList(p.Tags), p.CreatedAt)
	if isDuplicate(err) {
		return domain.ConflictError{Resource: "product", Msg: "id already exists", Err: err}
	}
	return err
}

// Update rewrites the editable fields of a product owned by p.SellerID.
func (r ProductRepo) Update(ctx context.Context, p models.Product) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, brand = ?, category = ?, price = ?, sale_price = ?,
			stock_quantity = ?, image_url = ?, tags = ?
		WHERE id = ? AND seller_id = ?
	`, p.Name, intdb.NullIfEmpty(p.Description), p.Brand, p.Category, p.Price, nullDecimal(p.SalePrice),
		p.StockQuantity, intdb.NullIfEmpty(p.ImageURL), intdb.JoinList(p.Tags), p.ID, p.SellerID)
	return err
}

// Delete removes a product only when sellerID owns it.
func (r ProductRepo) Delete(ctx context.Context, sellerID, id string) error {
	db, err := conn(r.DB)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = ? AND seller_id = ?`, id, sellerID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "product"}
	}
	return nil
}
