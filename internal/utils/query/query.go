package query

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"Go-Storefront/domain"

	"github.com/spf13/cast"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
	Time
)

type (
	Field struct {
		Column string
		Kind   Kind
	}

	// Relation is a belongs-to association that may be filtered through,
	// e.g. filters[category][slug][$eq]=coffee.
	Relation struct {
		Table      string
		ForeignKey string
		Fields     map[string]Field
	}

	Schema struct {
		Table       string
		Fields      map[string]Field
		Relations   map[string]Relation
		Populate    map[string][]string
		DefaultSort []SortField
	}

	Condition struct {
		Relation string
		Field    string
		Operator string
		Values   []string
	}

	SortField struct {
		Field string
		Desc  bool
	}

	Params struct {
		Filters     []Condition
		Populate    []string
		PopulateAll bool
		Sort        []SortField

		Page     int
		PageSize int
		Start    int
		Limit    int
		offset   bool
	}

	// Query is a Params bound to a Schema, ready to be applied to gorm.
	Query struct {
		Filter   func(*gorm.DB) *gorm.DB
		Order    func(*gorm.DB) *gorm.DB
		Paginate func(*gorm.DB) *gorm.DB
		Preloads []string
		Page     int
		PageSize int
	}
)

var operators = map[string]string{
	"$eq":         "%s = ?",
	"$ne":         "%s <> ?",
	"$lt":         "%s < ?",
	"$lte":        "%s <= ?",
	"$gt":         "%s > ?",
	"$gte":        "%s >= ?",
	"$contains":   `%s LIKE ? ESCAPE '\'`,
	"$containsi":  `LOWER(%s) LIKE ? ESCAPE '\'`,
	"$startsWith": `%s LIKE ? ESCAPE '\'`,
	"$in":         "%s IN ?",
	"$notIn":      "%s NOT IN ?",
	"$null":       "%s IS NULL",
	"$notNull":    "%s IS NOT NULL",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidQuery, fmt.Sprintf(format, args...))
}

// splitKey turns "filters[category][slug][$eq]" into ("filters", [category slug $eq]).
func splitKey(key string) (string, []string, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, nil, nil
	}
	root := key[:open]
	rest := key[open:]
	var parts []string
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, invalid("malformed key %q", key)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, invalid("malformed key %q", key)
		}
		parts = append(parts, rest[1:end])
		rest = rest[end+1:]
	}
	return root, parts, nil
}

// Parse reads filters, populate, sort and pagination parameters. Unrelated keys are ignored.
func Parse(values url.Values) (Params, error) {
	p := Params{Page: 1, PageSize: DefaultPageSize}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conditions := map[string]*Condition{}
	var order []string
	var pageSet bool

	for _, key := range keys {
		root, parts, err := splitKey(key)
		if err != nil {
			return Params{}, err
		}
		vals := values[key]

		switch root {
		case "filters":
			cond, err := parseFilter(parts, vals)
			if err != nil {
				return Params{}, err
			}
			id := cond.Relation + "." + cond.Field + "." + cond.Operator
			if existing, ok := conditions[id]; ok {
				existing.Values = append(existing.Values, cond.Values...)
				continue
			}
			conditions[id] = &cond
			order = append(order, id)

		case "populate":
			for _, v := range vals {
				if len(parts) > 0 && !isIndex(parts[0]) {
					// populate[images]=true or populate[category][populate]=image
					if len(parts) > 1 || v == "*" || cast.ToBool(v) {
						p.Populate = append(p.Populate, parts[0])
					}
					continue
				}
				for _, name := range splitList(v) {
					if name == "*" {
						p.PopulateAll = true
						continue
					}
					p.Populate = append(p.Populate, name)
				}
			}

		case "sort":
			for _, v := range vals {
				for _, item := range splitList(v) {
					field, dir, _ := strings.Cut(item, ":")
					switch strings.ToLower(dir) {
					case "", "asc":
						p.Sort = append(p.Sort, SortField{Field: field})
					case "desc":
						p.Sort = append(p.Sort, SortField{Field: field, Desc: true})
					default:
						return Params{}, invalid("bad sort direction %q", dir)
					}
				}
			}

		case "pagination":
			if len(parts) != 1 || len(vals) == 0 {
				return Params{}, invalid("malformed pagination key %q", key)
			}
			n, err := cast.ToIntE(vals[0])
			if err != nil {
				return Params{}, invalid("pagination[%s] must be a number", parts[0])
			}
			switch parts[0] {
			case "page":
				p.Page, pageSet = n, true
			case "pageSize":
				p.PageSize, pageSet = n, true
			case "start":
				p.Start, p.offset = n, true
			case "limit":
				p.Limit, p.offset = n, true
			case "withCount":
			default:
				return Params{}, invalid("unknown pagination parameter %q", parts[0])
			}
		}
	}

	if pageSet && p.offset {
		return Params{}, invalid("cannot mix page and offset pagination")
	}
	if p.offset {
		if p.Start < 0 {
			return Params{}, invalid("pagination[start] must be >= 0")
		}
		if p.Limit == 0 {
			p.Limit = DefaultPageSize
		}
		if p.Limit < 0 || p.Limit > MaxPageSize {
			p.Limit = MaxPageSize
		}
		if p.Start > math.MaxInt-p.Limit {
			return Params{}, invalid("pagination[start] is out of range")
		}
		p.PageSize = p.Limit
		p.Page = p.Start/p.Limit + 1
	} else {
		if p.Page < 1 {
			return Params{}, invalid("pagination[page] must be >= 1")
		}
		if p.PageSize < 1 {
			return Params{}, invalid("pagination[pageSize] must be >= 1")
		}
		if p.PageSize > MaxPageSize {
			p.PageSize = MaxPageSize
		}
		if p.Page > math.MaxInt/p.PageSize {
			return Params{}, invalid("pagination[page] is out of range")
		}
	}

	for _, id := range order {
		p.Filters = append(p.Filters, *conditions[id])
	}
	return p, nil
}

func parseFilter(parts []string, vals []string) (Condition, error) {
	// drop a trailing $in index: filters[id][$in][0]=1
	if n := len(parts); n >= 2 && isIndex(parts[n-1]) {
		parts = parts[:n-1]
	}

	var cond Condition
	switch len(parts) {
	case 1:
		cond = Condition{Field: parts[0], Operator: "$eq"}
	case 2:
		if strings.HasPrefix(parts[1], "$") {
			cond = Condition{Field: parts[0], Operator: parts[1]}
		} else {
			cond = Condition{Relation: parts[0], Field: parts[1], Operator: "$eq"}
		}
	case 3:
		cond = Condition{Relation: parts[0], Field: parts[1], Operator: parts[2]}
	default:
		return Condition{}, invalid("unsupported filter depth")
	}
	if strings.HasPrefix(cond.Field, "$") {
		return Condition{}, invalid("logical filter %q is not supported", cond.Field)
	}
	if _, ok := operators[cond.Operator]; !ok {
		return Condition{}, invalid("unknown operator %q", cond.Operator)
	}

	for _, v := range vals {
		if cond.Operator == "$in" || cond.Operator == "$notIn" {
			cond.Values = append(cond.Values, splitList(v)...)
			continue
		}
		cond.Values = append(cond.Values, v)
	}
	return cond, nil
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func coerce(kind Kind, raw string) (any, error) {
	switch kind {
	case Int:
		return cast.ToIntE(raw)
	case Float:
		return cast.ToFloat64E(raw)
	case Bool:
		return cast.ToBoolE(raw)
	case Time:
		return cast.ToTimeE(raw)
	default:
		return raw, nil
	}
}

type predicate struct {
	sql  string
	args []any
}

func buildPredicate(column string, kind Kind, cond Condition) (predicate, error) {
	tmpl := operators[cond.Operator]
	expr := fmt.Sprintf(tmpl, column)

	switch cond.Operator {
	case "$null", "$notNull":
		if len(cond.Values) > 0 && !cast.ToBool(cond.Values[0]) {
			// $null=false is the same as $notNull=true
			if cond.Operator == "$null" {
				expr = fmt.Sprintf(operators["$notNull"], column)
			} else {
				expr = fmt.Sprintf(operators["$null"], column)
			}
		}
		return predicate{sql: expr}, nil
	case "$in", "$notIn":
		if len(cond.Values) == 0 {
			return predicate{}, invalid("%s on %q needs at least one value", cond.Operator, cond.Field)
		}
		list := make([]any, 0, len(cond.Values))
		for _, raw := range cond.Values {
			v, err := coerce(kind, raw)
			if err != nil {
				return predicate{}, invalid("bad value %q for %q", raw, cond.Field)
			}
			list = append(list, v)
		}
		return predicate{sql: expr, args: []any{list}}, nil
	}

	if len(cond.Values) != 1 {
		return predicate{}, invalid("%s on %q needs exactly one value", cond.Operator, cond.Field)
	}
	raw := cond.Values[0]
	switch cond.Operator {
	case "$contains":
		return predicate{sql: expr, args: []any{"%" + likeEscaper.Replace(raw) + "%"}}, nil
	case "$containsi":
		return predicate{sql: expr, args: []any{"%" + likeEscaper.Replace(strings.ToLower(raw)) + "%"}}, nil
	case "$startsWith":
		return predicate{sql: expr, args: []any{likeEscaper.Replace(raw) + "%"}}, nil
	}
	v, err := coerce(kind, raw)
	if err != nil {
		return predicate{}, invalid("bad value %q for %q", raw, cond.Field)
	}
	return predicate{sql: expr, args: []any{v}}, nil
}

// Build validates p against s and returns the gorm scopes to run it.
func (p Params) Build(s Schema) (*Query, error) {
	var preds []predicate
	for _, cond := range p.Filters {
		if cond.Relation == "" {
			field, ok := s.Fields[cond.Field]
			if !ok {
				return nil, invalid("unknown filter field %q", cond.Field)
			}
			pred, err := buildPredicate(s.Table+"."+field.Column, field.Kind, cond)
			if err != nil {
				return nil, err
			}
			preds = append(preds, pred)
			continue
		}

		rel, ok := s.Relations[cond.Relation]
		if !ok {
			return nil, invalid("unknown filter relation %q", cond.Relation)
		}
		field, ok := rel.Fields[cond.Field]
		if !ok {
			return nil, invalid("unknown filter field %q on %q", cond.Field, cond.Relation)
		}
		inner, err := buildPredicate(rel.Table+"."+field.Column, field.Kind, cond)
		if err != nil {
			return nil, err
		}
		preds = append(preds, predicate{
			sql:  fmt.Sprintf("%s.%s IN (SELECT %s.id FROM %s WHERE %s)", s.Table, rel.ForeignKey, rel.Table, rel.Table, inner.sql),
			args: inner.args,
		})
	}

	sorts := p.Sort
	if len(sorts) == 0 {
		sorts = s.DefaultSort
	}
	var orderBy []clause.OrderByColumn
	for _, sf := range sorts {
		field, ok := s.Fields[sf.Field]
		if !ok {
			return nil, invalid("unknown sort field %q", sf.Field)
		}
		orderBy = append(orderBy, clause.OrderByColumn{
			Column: clause.Column{Table: s.Table, Name: field.Column},
			Desc:   sf.Desc,
		})
	}

	var preloads []string
	seen := map[string]bool{}
	addPreload := func(name string) error {
		targets, ok := s.Populate[name]
		if !ok {
			return invalid("unknown populate relation %q", name)
		}
		for _, t := range targets {
			if !seen[t] {
				seen[t] = true
				preloads = append(preloads, t)
			}
		}
		return nil
	}
	if p.PopulateAll {
		names := make([]string, 0, len(s.Populate))
		for name := range s.Populate {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			_ = addPreload(name)
		}
	}
	for _, name := range p.Populate {
		if err := addPreload(name); err != nil {
			return nil, err
		}
	}

	if p.PageSize > 0 && p.Page > math.MaxInt/p.PageSize {
		return nil, invalid("pagination[page] is out of range")
	}
	offset := (p.Page - 1) * p.PageSize
	if p.offset {
		offset = p.Start
	}
	limit := p.PageSize

	return &Query{
		Filter: func(db *gorm.DB) *gorm.DB {
			for _, pred := range preds {
				db = db.Where(pred.sql, pred.args...)
			}
			return db
		},
		Order: func(db *gorm.DB) *gorm.DB {
			for _, ob := range orderBy {
				db = db.Order(ob)
			}
			return db
		},
		Paginate: func(db *gorm.DB) *gorm.DB {
			return db.Offset(offset).Limit(limit)
		},
		Preloads: preloads,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// FromRaw parses a raw query string, as handed over by fiber.
func FromRaw(raw string) (Params, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return Params{}, invalid("malformed query string")
	}
	return Parse(values)
}

// Pagination reports the page window for a total row count.
func (q *Query) Pagination(total int64) *domain.Pagination {
	return domain.NewPagination(q.Page, q.PageSize, total)
}
