package request

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/NeuralTrust/qa-service/pkg/domain"
)

var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidRange     = errors.New("end must not be lower than start")
)

// ExtractPagination turns the start and end query values into a row window.
// Empty values on both sides mean the whole collection.
func ExtractPagination(start, end string) (domain.Pagination, error) {
	if start == "" && end == "" {
		return domain.Pagination{}, nil
	}
	if start == "" || end == "" {
		return domain.Pagination{}, ErrMissingParameter
	}
	from, err := parseBound("start", start)
	if err != nil {
		return domain.Pagination{}, err
	}
	to, err := parseBound("end", end)
	if err != nil {
		return domain.Pagination{}, err
	}
	if to < from {
		return domain.Pagination{}, ErrInvalidRange
	}
	limit := to - from
	return domain.Pagination{Limit: &limit, Offset: from}, nil
}

func parseBound(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse parameter %s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("parameter %s must not be negative", name)
	}
	return n, nil
}
