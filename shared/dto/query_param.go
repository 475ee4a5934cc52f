package dto

import (
	"tasknest/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering of list queries. Values are interpolated into SQL,
// so they are only ever built from constants, never from request input.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// InsertionOrder orders rows of table by creation time, oldest first.
func InsertionOrder(table string) QueryParams {
	sortBy := constant.DefaultValueSortBy
	if table != "" {
		sortBy = table + "." + sortBy
	}

	return QueryParams{
		SortBy:  sortBy,
		SortDir: constant.DefaultValueSortDir,
	}
}
