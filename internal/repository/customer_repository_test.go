package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbooking/admin/internal/query"
)

const (
	insertUserSQL = "INSERT INTO `USER` (FirstName, LastName, Email, PhoneNumber, PasswordHash, Role, CustomerID, EmployeeID, OrganizerID)" +
		" VALUES (?, ?, ?, ?, 'TEMP_HASH', 'Customer', NULL, NULL, NULL)"
	insertCustomerSQL = "INSERT INTO CUSTOMER (UserID, LoyaltyPoints) VALUES (?, ?)"
	linkUserSQL       = "UPDATE `USER` SET CustomerID = ? WHERE UserID = ?"
	selectUserIDSQL   = "SELECT UserID FROM CUSTOMER WHERE CustomerID = ?"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCustomerCreateCommitsAllThreeStatements(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(insertUserSQL).
		WithArgs("Ada", "Lovelace", "ada@x.com", "555-0100").
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectExec(insertCustomerSQL).
		WithArgs(int64(41), 10).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(linkUserSQL).
		WithArgs(int64(7), int64(41)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), CustomerInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com",
		Phone: "555-0100", LoyaltyPoints: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerCreateStoresEmptyPhoneAsNull(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(insertUserSQL).
		WithArgs("Ada", "Lovelace", "ada@x.com", nil).
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectExec(insertCustomerSQL).
		WithArgs(int64(41), 0).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(linkUserSQL).
		WithArgs(int64(7), int64(41)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.Create(context.Background(), CustomerInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure after the first insert must roll the whole sequence back;
// no partial person row survives.
func TestCustomerCreateRollsBackOnMidSequenceFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(insertUserSQL).
		WithArgs("Ada", "Lovelace", "ada@x.com", nil).
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectExec(insertCustomerSQL).
		WithArgs(int64(41), 0).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), CustomerInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com",
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerCreateDuplicateEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(insertUserSQL).
		WithArgs("Ada", "Lovelace", "ada@x.com", nil).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), CustomerInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdateWritesBothTablesInOneTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(selectUserIDSQL).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"UserID"}).AddRow(41))
	mock.ExpectExec("UPDATE `USER` SET FirstName = ?, LastName = ?, Email = ?, PhoneNumber = ? WHERE UserID = ?").
		WithArgs("Ada", "Byron", "ada@x.com", "555-0100", int64(41)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE CUSTOMER SET LoyaltyPoints = ? WHERE CustomerID = ?").
		WithArgs(25, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), 7, CustomerInput{
		FirstName: "Ada", LastName: "Byron", Email: "ada@x.com",
		Phone: "555-0100", LoyaltyPoints: 25,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdateUnknownID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(selectUserIDSQL).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Update(context.Background(), 99, CustomerInput{
		FirstName: "x", LastName: "y", Email: "z@x.com",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerList(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	q, _ := query.Customers()
	mock.ExpectQuery(q).WillReturnRows(
		sqlmock.NewRows([]string{"CustomerID", "FirstName", "LastName", "Email", "PhoneNumber", "LoyaltyPoints"}).
			AddRow(1, "Ada", "Lovelace", "ada@x.com", "555-0100", 10).
			AddRow(2, "Charles", "Babbage", "cb@x.com", nil, 0))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada", rows[0].FirstName)
	require.NotNil(t, rows[0].PhoneNumber)
	assert.Equal(t, "555-0100", *rows[0].PhoneNumber)
	assert.Nil(t, rows[1].PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDeleteRemovesUserRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectQuery(selectUserIDSQL).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"UserID"}).AddRow(41))
	mock.ExpectExec("DELETE FROM `USER` WHERE UserID = ?").
		WithArgs(int64(41)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDeleteUnknownID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCustomerRepo(db)

	mock.ExpectQuery(selectUserIDSQL).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
