package repositories

import (
	"context"
	"database/sql"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
)

// OrderSQLRepository is the MySQL-backed order repository, selected
// when the data backend is "mysql". Order lines live in the
// order_items table.
type OrderSQLRepository struct {
	DB *sql.DB
}

const orderSelect = `
	SELECT id, order_number, customer, email,
	       DATE_FORMAT(order_date, '%Y-%m-%dT%H:%i:%sZ') AS order_date,
	       total, status, items,
	       COALESCE(payment_method,'') AS payment_method,
	       COALESCE(shipping_address,'') AS shipping_address
	FROM orders
`

func (r OrderSQLRepository) List(ctx context.Context, q OrderQuery) ([]models.Order, error) {
	query := orderSelect
	where := ""
	args := []any{}

	if q.Status != "" && q.Status != "all" {
		where = " WHERE status = ?"
		args = append(args, q.Status)
	}
	if q.Search != "" {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += " (order_number LIKE ? OR customer LIKE ?)"
		like := "%" + q.Search + "%"
		args = append(args, like, like)
	}

	rows, err := r.DB.QueryContext(ctx, query+where+" ORDER BY order_date DESC", args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list orders", Err: err}
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.Customer, &o.Email, &o.Date,
			&o.Total, &o.Status, &o.Items, &o.PaymentMethod, &o.ShippingAddress,
		); err != nil {
			return nil, domain.InternalError{Msg: "scan order", Err: err}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r OrderSQLRepository) Get(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := r.DB.QueryRowContext(ctx, orderSelect+" WHERE id = ?", id).Scan(
		&o.ID, &o.OrderNumber, &o.Customer, &o.Email, &o.Date,
		&o.Total, &o.Status, &o.Items, &o.PaymentMethod, &o.ShippingAddress,
	)
	if err == sql.ErrNoRows {
		return models.Order{}, domain.NotFoundError{Resource: "order", ID: id}
	}
	if err != nil {
		return models.Order{}, domain.InternalError{Msg: "get order", Err: err}
	}

	lines, err := r.lines(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	o.Products = lines
	return o, nil
}

func (r OrderSQLRepository) lines(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT product_name, quantity, price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, domain.InternalError{Msg: "list order items", Err: err}
	}
	defer rows.Close()

	out := []models.OrderLine{}
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.Name, &l.Quantity, &l.Price); err != nil {
			return nil, domain.InternalError{Msg: "scan order item", Err: err}
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r OrderSQLRepository) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id)
	if err != nil {
		return models.Order{}, domain.InternalError{Msg: "update order status", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Order{}, domain.NotFoundError{Resource: "order", ID: id}
	}
	return r.Get(ctx, id)
}
