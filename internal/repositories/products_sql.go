package repositories

import (
	"context"
	"database/sql"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
)

// ProductSQLRepository is the MySQL-backed product catalog.
type ProductSQLRepository struct {
	DB *sql.DB
}

const productSelect = `
	SELECT id, name, sku, category, price, cost, stock, status,
	       COALESCE(image,'') AS image,
	       COALESCE(description,'') AS description,
	       DATE_FORMAT(created_at, '%Y-%m-%dT%H:%i:%sZ') AS created_at,
	       DATE_FORMAT(updated_at, '%Y-%m-%dT%H:%i:%sZ') AS updated_at
	FROM products
`

func scanProduct(rows interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := rows.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Category, &p.Price, &p.Cost,
		&p.Stock, &p.Status, &p.Image, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r ProductSQLRepository) List(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	query := productSelect
	where := ""
	args := []any{}

	if q.Category != "" && q.Category != "all" {
		where = " WHERE category = ?"
		args = append(args, q.Category)
	}
	if q.Search != "" {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += " (name LIKE ? OR sku LIKE ?)"
		like := "%" + q.Search + "%"
		args = append(args, like, like)
	}

	rows, err := r.DB.QueryContext(ctx, query+where+" ORDER BY created_at DESC", args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list products", Err: err}
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan product", Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ProductSQLRepository) Get(ctx context.Context, id string) (models.Product, error) {
	p, err := scanProduct(r.DB.QueryRowContext(ctx, productSelect+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return models.Product{}, domain.NotFoundError{Resource: "product", ID: id}
	}
	if err != nil {
		return models.Product{}, domain.InternalError{Msg: "get product", Err: err}
	}
	return p, nil
}

func (r ProductSQLRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = newID("prod")
	p.Status = models.StockStatus(p.Stock)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO products (id, name, sku, category, price, cost, stock, status, image, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, p.ID, p.Name, p.SKU, p.Category, p.Price, p.Cost, p.Stock, p.Status, p.Image, p.Description)
	if err != nil {
		return models.Product{}, domain.InternalError{Msg: "create product", Err: err}
	}
	return r.Get(ctx, p.ID)
}

func (r ProductSQLRepository) Update(ctx context.Context, id string, p models.Product) (models.Product, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE products
		SET name = ?, sku = ?, category = ?, price = ?, cost = ?, stock = ?, status = ?, updated_at = NOW()
		WHERE id = ?
	`, p.Name, p.SKU, p.Category, p.Price, p.Cost, p.Stock, models.StockStatus(p.Stock), id)
	if err != nil {
		return models.Product{}, domain.InternalError{Msg: "update product", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Product{}, domain.NotFoundError{Resource: "product", ID: id}
	}
	return r.Get(ctx, id)
}

func (r ProductSQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete product", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "product", ID: id}
	}
	return nil
}
