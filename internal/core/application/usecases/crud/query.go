package crud

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"storefront/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 100
)

// ListParams are the raw list options of a request. Empty strings mean "not given".
type ListParams struct {
	Filters map[string]string
	Sort    string
	Page    string
	Limit   string
}

// Condition restricts a list to rows whose column equals the value.
type Condition struct {
	Column string
	Value  any
}

// Order sorts a list by a column.
type Order struct {
	Column string
	Desc   bool
}

// ListQuery is a validated list request expressed in storage terms.
type ListQuery struct {
	Conditions []Condition
	Orders     []Order
	Offset     int
	Limit      int
}

// BuildListQuery validates params against the schema.
//
// Sort expressions are comma separated field names, a leading "-" meaning
// descending: "-name,email". Filters must name filterable fields.
func (s Schema) BuildListQuery(params ListParams) (ListQuery, error) {
	conditions, errFilters := s.conditions(params.Filters)
	orders, errSort := s.orders(params.Sort)
	page, errPage := parsePositive("page", params.Page, DefaultPage, math.MaxInt32)
	limit, errLimit := parsePositive("limit", params.Limit, DefaultLimit, MaxLimit)

	if err := errors.Join(errFilters, errSort, errPage, errLimit); err != nil {
		return ListQuery{}, err
	}

	return ListQuery{
		Conditions: conditions,
		Orders:     orders,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}, nil
}

func (s Schema) conditions(filters map[string]string) ([]Condition, error) {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	slices.Sort(names)

	var problems []error
	conditions := make([]Condition, 0, len(names))
	for _, name := range names {
		f, ok := s.Field(name)
		if !ok || !f.Filterable {
			problems = append(problems, errs.NewFieldIsNotAllowedError(name, "cannot filter by this field"))
			continue
		}
		value, err := f.decode(filters[name])
		if err != nil {
			problems = append(problems, err)
			continue
		}
		conditions = append(conditions, Condition{Column: f.Column, Value: value})
	}

	return conditions, errors.Join(problems...)
}

func (s Schema) orders(expr string) ([]Order, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return s.DefaultSort(), nil
	}

	var orders []Order
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")

		f, ok := s.Field(name)
		if !ok || !f.Sortable {
			return nil, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("cannot sort by %q", name))
		}
		orders = append(orders, Order{Column: f.Column, Desc: desc})
	}

	return orders, nil
}

func parsePositive(name, raw string, fallback, upper int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if n < 1 || n > upper {
		return 0, errs.NewValueIsOutOfRangeError(name, n, 1, upper)
	}

	return n, nil
}
