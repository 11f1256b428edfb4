package health

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrInvalidEntity = errors.New("invalid entity")

// sortable columns shared by every health table
var sortableColumns = map[string]bool{
	"created_date": true,
	"id":           true,
}

// orderClause turns the store's "-created_date" notation into SQL. An empty order
// sorts newest first.
func orderClause(order string) (string, error) {
	order = strings.TrimSpace(order)
	if order == "" {
		return "created_date DESC", nil
	}
	dir := "ASC"
	if strings.HasPrefix(order, "-") {
		dir = "DESC"
		order = strings.TrimPrefix(order, "-")
	}
	if !sortableColumns[order] {
		return "", fmt.Errorf("unsupported sort field %q", order)
	}
	return order + " " + dir, nil
}

func listOrdered[T any](tx *gorm.DB, order string, limit int) ([]*T, error) {
	clause, err := orderClause(order)
	if err != nil {
		return nil, err
	}
	q := tx.Order(clause).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []*T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidEntity, fmt.Sprintf(format, args...))
}
