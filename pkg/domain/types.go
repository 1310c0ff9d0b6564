package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/lib/pq"
)

// StringArray maps a Go string slice onto a postgres TEXT[] column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return pq.Array([]string(a)).Value()
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var strs []string
	if err := pq.Array(&strs).Scan(value); err != nil {
		return fmt.Errorf("failed to scan text array: %w", err)
	}
	*a = strs
	return nil
}

func (StringArray) GormDataType() string {
	return "text[]"
}

// Pagination selects a window of rows. A nil Limit means every row.
type Pagination struct {
	Limit  *int
	Offset int
}
