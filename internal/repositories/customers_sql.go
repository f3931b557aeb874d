package repositories

import (
	"context"
	"database/sql"

	"storeadmin/internal/domain"
	"storeadmin/internal/domain/models"
)

// CustomerSQLRepository is the MySQL-backed customer directory.
type CustomerSQLRepository struct {
	DB *sql.DB
}

const customerSelect = `
	SELECT id, name, email,
	       COALESCE(phone,'') AS phone,
	       total_orders, total_spent, status,
	       DATE_FORMAT(joined_date, '%Y-%m-%dT%H:%i:%sZ') AS joined_date,
	       COALESCE(DATE_FORMAT(last_order, '%Y-%m-%dT%H:%i:%sZ'), '') AS last_order,
	       COALESCE(location,'') AS location
	FROM customers
`

func (r CustomerSQLRepository) List(ctx context.Context, q CustomerQuery) ([]models.Customer, error) {
	query := customerSelect
	args := []any{}
	if q.Search != "" {
		query += " WHERE (name LIKE ? OR email LIKE ?)"
		like := "%" + q.Search + "%"
		args = append(args, like, like)
	}

	rows, err := r.DB.QueryContext(ctx, query+" ORDER BY joined_date", args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list customers", Err: err}
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalOrders,
			&c.TotalSpent, &c.Status, &c.JoinedDate, &c.LastOrder, &c.Location,
		); err != nil {
			return nil, domain.InternalError{Msg: "scan customer", Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CustomerSQLRepository) Get(ctx context.Context, id string) (models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRowContext(ctx, customerSelect+" WHERE id = ?", id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalOrders,
		&c.TotalSpent, &c.Status, &c.JoinedDate, &c.LastOrder, &c.Location,
	)
	if err == sql.ErrNoRows {
		return models.Customer{}, domain.NotFoundError{Resource: "customer", ID: id}
	}
	if err != nil {
		return models.Customer{}, domain.InternalError{Msg: "get customer", Err: err}
	}
	return c, nil
}
