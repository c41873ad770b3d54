package transactionRepository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/transaction"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type TransactionDB struct {
	ID          sql.NullString  `db:"id"`
	Type        sql.NullString  `db:"type"`
	Amount      sql.NullFloat64 `db:"amount"`
	Description sql.NullString  `db:"description"`
	CategoryID  sql.NullString  `db:"category_id"`
	Date        time.Time       `db:"date"`
	Method      sql.NullString  `db:"method"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"type":        tx.Type,
		"amount":      tx.Amount,
		"description": tx.Description,
		"category_id": nullableString(tx.CategoryID),
		"date":        tx.Date,
		"method":      tx.Method,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	query, args, err := sqlx.Named(queryGetTransactionByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactions(c context.Context) ([]entity.Transaction, error) {
	return r.selectTransactions(c, queryGetTransactions, map[string]interface{}{}, "GetTransactions")
}

func (r *transactionRepository) GetTransactionsByPeriod(c context.Context, year int, month int) ([]entity.Transaction, error) {
	argsKV := map[string]interface{}{"year": year, "month": month}
	if month == 0 {
		return r.selectTransactions(c, queryGetTransactionsByYear, argsKV, "GetTransactionsByYear")
	}
	return r.selectTransactions(c, queryGetTransactionsByMonth, argsKV, "GetTransactionsByMonth")
}

func (r *transactionRepository) selectTransactions(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"type":        tx.Type,
		"amount":      tx.Amount,
		"description": tx.Description,
		"category_id": nullableString(tx.CategoryID),
		"date":        tx.Date,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateTransaction no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteTransaction, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteTransaction no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

// nullableString keeps the category foreign key NULL when a draft carries no
// category.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          row.ID.String,
		Type:        row.Type.String,
		Amount:      row.Amount.Float64,
		Description: row.Description.String,
		CategoryID:  row.CategoryID.String,
		Date:        row.Date,
		Method:      row.Method.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
