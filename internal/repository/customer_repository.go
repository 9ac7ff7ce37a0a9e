package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eventbooking/admin/internal/query"
)

// CustomerRow is one line of the customer list view: the CUSTOMER row
// joined with its identity fields from `USER`.
type CustomerRow struct {
	CustomerID    uint64  `json:"customer_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	PhoneNumber   *string `json:"phone_number"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

// Customer is the full detail used by the update form. It carries the
// UserID so the two-table update and the delete can address the `USER` row.
type Customer struct {
	CustomerID    uint64  `json:"customer_id"`
	UserID        uint64  `json:"user_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	PhoneNumber   *string `json:"phone_number"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

// CustomerInput holds the writable customer fields, shared by Create and
// Update. An empty Phone is stored as NULL.
type CustomerInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	LoyaltyPoints int
}

type CustomerRepo struct{ DB *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// List returns all customers in the view's default order.
func (r *CustomerRepo) List(ctx context.Context) ([]CustomerRow, error) {
	q, args := query.Customers()
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CustomerRow{}
	for rows.Next() {
		var c CustomerRow
		var phone sql.NullString
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &phone, &c.LoyaltyPoints); err != nil {
			return nil, err
		}
		if phone.Valid {
			c.PhoneNumber = &phone.String
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Options returns the selector entries, labeled "ID - First Last".
func (r *CustomerRepo) Options(ctx context.Context) ([]Option, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT C.CustomerID, CONCAT(U.FirstName, ' ', U.LastName) FROM CUSTOMER C INNER JOIN `USER` U ON C.UserID = U.UserID "+query.OrderCustomers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Option{}
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out = append(out, Option{ID: id, Label: fmt.Sprintf("%d - %s", id, name)})
	}
	return out, rows.Err()
}

// GetByID fetches one customer with its identity fields.
func (r *CustomerRepo) GetByID(ctx context.Context, customerID uint64) (Customer, error) {
	var c Customer
	var phone sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT C.CustomerID, C.UserID, U.FirstName, U.LastName, U.Email, U.PhoneNumber, C.LoyaltyPoints"+
			" FROM CUSTOMER C INNER JOIN `USER` U ON C.UserID = U.UserID WHERE C.CustomerID = ?",
		customerID).Scan(&c.CustomerID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &phone, &c.LoyaltyPoints)
	if err == sql.ErrNoRows {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, err
	}
	if phone.Valid {
		c.PhoneNumber = &phone.String
	}
	return c, nil
}

// Create inserts the `USER` row, the CUSTOMER row referencing it, and the
// CustomerID back-reference on `USER`, all inside one transaction. Either
// every statement commits or none does. Returns the new CustomerID.
func (r *CustomerRepo) Create(ctx context.Context, in CustomerInput) (uint64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // no-op after a successful Commit

	res, err := tx.ExecContext(ctx,
		"INSERT INTO `USER` (FirstName, LastName, Email, PhoneNumber, PasswordHash, Role, CustomerID, EmployeeID, OrganizerID)"+
			" VALUES (?, ?, ?, ?, 'TEMP_HASH', 'Customer', NULL, NULL, NULL)",
		in.FirstName, in.LastName, in.Email, nullable(in.Phone))
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	userID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	res, err = tx.ExecContext(ctx,
		"INSERT INTO CUSTOMER (UserID, LoyaltyPoints) VALUES (?, ?)",
		userID, in.LoyaltyPoints)
	if err != nil {
		return 0, fmt.Errorf("inserting customer: %w", err)
	}
	customerID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE `USER` SET CustomerID = ? WHERE UserID = ?",
		customerID, userID); err != nil {
		return 0, fmt.Errorf("linking user to customer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(customerID), nil
}

// Update writes the identity fields on `USER` and the loyalty counter on
// CUSTOMER inside one transaction, so a later read never sees a mix of
// old and new values.
func (r *CustomerRepo) Update(ctx context.Context, customerID uint64, in CustomerInput) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT UserID FROM CUSTOMER WHERE CustomerID = ?", customerID).Scan(&userID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE `USER` SET FirstName = ?, LastName = ?, Email = ?, PhoneNumber = ? WHERE UserID = ?",
		in.FirstName, in.LastName, in.Email, nullable(in.Phone), userID); err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("updating user: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE CUSTOMER SET LoyaltyPoints = ? WHERE CustomerID = ?",
		in.LoyaltyPoints, customerID); err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	return tx.Commit()
}

// Delete removes the customer's `USER` row. The schema's cascade rules
// remove the CUSTOMER row and its bookings.
func (r *CustomerRepo) Delete(ctx context.Context, customerID uint64) error {
	var userID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT UserID FROM CUSTOMER WHERE CustomerID = ?", customerID).Scan(&userID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM `USER` WHERE UserID = ?", userID)
	return err
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
