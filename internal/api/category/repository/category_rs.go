package categoryRepository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/ISLASKRIGA/IMony3/internal/api/category"
	"github.com/ISLASKRIGA/IMony3/internal/entity"
	contextPkg "github.com/ISLASKRIGA/IMony3/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type CategoryDB struct {
	ID        sql.NullString  `db:"id"`
	Name      sql.NullString  `db:"name"`
	Emoji     sql.NullString  `db:"emoji"`
	Color     sql.NullString  `db:"color"`
	Selected  sql.NullBool    `db:"selected"`
	Priority  sql.NullFloat64 `db:"priority"`
	Keywords  pq.StringArray  `db:"keywords"`
	Position  sql.NullInt64   `db:"position"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (r *categoryRepository) CreateCategory(c context.Context, cat entity.Category) error {
	return r.insertCategory(c, queryCreateCategory, cat, "CreateCategory")
}

func (r *categoryRepository) SeedCategory(c context.Context, cat entity.Category) error {
	return r.insertCategory(c, querySeedCategory, cat, "SeedCategory")
}

func (r *categoryRepository) insertCategory(c context.Context, namedQuery string, cat entity.Category, operation string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         cat.ID,
		"name":       cat.Name,
		"emoji":      cat.Emoji,
		"color":      cat.Color,
		"selected":   cat.Selected,
		"priority":   cat.Priority,
		"keywords":   pq.StringArray(cat.Keywords),
		"position":   cat.Position,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return err
	}

	return nil
}

func (r *categoryRepository) GetCategoryByID(c context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var row CategoryDB

	query, args, err := sqlx.Named(queryGetCategoryByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetCategoryByID no rows found")
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(row), nil
}

func (r *categoryRepository) GetCategories(c context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []CategoryDB

	query, args, err := sqlx.Named(queryGetCategories, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategories execution err")
		return nil, err
	}

	result := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeCategory(row))
	}

	return result, nil
}

func (r *categoryRepository) UpdateCategorySelection(c context.Context, id string, selected bool) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"selected":   selected,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateCategorySelection, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategorySelection named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategorySelection execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategorySelection rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateCategorySelection no rows affected")
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) makeCategory(row CategoryDB) entity.Category {
	return entity.Category{
		ID:        row.ID.String,
		Name:      row.Name.String,
		Emoji:     row.Emoji.String,
		Color:     row.Color.String,
		Selected:  row.Selected.Bool,
		Priority:  row.Priority.Float64,
		Keywords:  []string(row.Keywords),
		Position:  int(row.Position.Int64),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
