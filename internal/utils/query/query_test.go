package query

import (
	"math"
	"net/url"
	"testing"

	"Go-Storefront/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productSchema = Schema{
	Table: "products",
	Fields: map[string]Field{
		"id":          {Column: "id", Kind: Int},
		"slug":        {Column: "slug"},
		"productName": {Column: "product_name"},
		"price":       {Column: "price", Kind: Float},
		"isFeatured":  {Column: "is_featured", Kind: Bool},
		"createdAt":   {Column: "created_at", Kind: Time},
	},
	Relations: map[string]Relation{
		"category": {
			Table:      "categories",
			ForeignKey: "category_id",
			Fields:     map[string]Field{"slug": {Column: "slug"}},
		},
	},
	Populate: map[string][]string{
		"images":   {"Images"},
		"category": {"Category", "Category.Image"},
	},
	DefaultSort: []SortField{{Field: "id"}},
}

func mustParse(t *testing.T, raw string) Params {
	t.Helper()
	p, err := FromRaw(raw)
	require.NoError(t, err)
	return p
}

func TestParseFilters(t *testing.T) {
	p := mustParse(t, "filters[slug][$eq]=house-blend&filters[category][slug][$eq]=coffee&filters[isFeatured]=true")

	require.Len(t, p.Filters, 3)
	assert.Contains(t, p.Filters, Condition{Relation: "category", Field: "slug", Operator: "$eq", Values: []string{"coffee"}})
	assert.Contains(t, p.Filters, Condition{Field: "slug", Operator: "$eq", Values: []string{"house-blend"}})
	assert.Contains(t, p.Filters, Condition{Field: "isFeatured", Operator: "$eq", Values: []string{"true"}})
}

func TestParseInMergesIndexedValues(t *testing.T) {
	p := mustParse(t, "filters[id][$in][0]=1&filters[id][$in][1]=2&filters[id][$in][2]=3,4")

	require.Len(t, p.Filters, 1)
	assert.Equal(t, "$in", p.Filters[0].Operator)
	assert.ElementsMatch(t, []string{"1", "2", "3", "4"}, p.Filters[0].Values)
}

func TestParsePopulateForms(t *testing.T) {
	assert.True(t, mustParse(t, "populate=*").PopulateAll)
	assert.Equal(t, []string{"images", "category"}, mustParse(t, "populate=images,category").Populate)
	assert.Equal(t, []string{"images", "category"}, mustParse(t, "populate[0]=images&populate[1]=category").Populate)
	assert.Equal(t, []string{"category"}, mustParse(t, "populate[category][populate]=image").Populate)
}

func TestParseSort(t *testing.T) {
	p := mustParse(t, "sort=price:desc,productName")
	assert.Equal(t, []SortField{{Field: "price", Desc: true}, {Field: "productName"}}, p.Sort)

	_, err := FromRaw("sort=price:sideways")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestParsePagination(t *testing.T) {
	p := mustParse(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)

	p = mustParse(t, "pagination[page]=3&pagination[pageSize]=500")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)

	p = mustParse(t, "pagination[limit]=4")
	assert.Equal(t, 4, p.PageSize)
	assert.Equal(t, 1, p.Page)

	p = mustParse(t, "pagination[start]=8&pagination[limit]=4")
	assert.Equal(t, 3, p.Page)

	p = mustParse(t, "pagination[limit]=-1")
	assert.Equal(t, MaxPageSize, p.PageSize)
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"pagination[page]=abc",
		"pagination[page]=0",
		"pagination[page]=1&pagination[limit]=3",
		"filters[price][$between]=1",
		"filters[$or][0][slug][$eq]=x",
		"filters[slug=x",
	}
	for _, raw := range cases {
		_, err := FromRaw(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidQuery, raw)
	}
}

func TestBuildValidatesAgainstSchema(t *testing.T) {
	_, err := mustParse(t, "filters[password][$eq]=x").Build(productSchema)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = mustParse(t, "filters[brand][slug][$eq]=x").Build(productSchema)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = mustParse(t, "sort=password").Build(productSchema)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = mustParse(t, "populate=reviews").Build(productSchema)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = mustParse(t, "filters[price][$gt]=cheap").Build(productSchema)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestBuildPreloads(t *testing.T) {
	q, err := mustParse(t, "populate=*").Build(productSchema)
	require.NoError(t, err)
	assert.Equal(t, []string{"Category", "Category.Image", "Images"}, q.Preloads)

	q, err = mustParse(t, "populate=images&pagination[page]=2&pagination[pageSize]=10").Build(productSchema)
	require.NoError(t, err)
	assert.Equal(t, []string{"Images"}, q.Preloads)
	assert.Equal(t, &domain.Pagination{Page: 2, PageSize: 10, PageCount: 3, Total: 21}, q.Pagination(21))
}

func TestBuildPredicate(t *testing.T) {
	pred, err := buildPredicate("products.price", Float, Condition{Field: "price", Operator: "$gte", Values: []string{"9.5"}})
	require.NoError(t, err)
	assert.Equal(t, "products.price >= ?", pred.sql)
	assert.Equal(t, []any{9.5}, pred.args)

	pred, err = buildPredicate("products.product_name", String, Condition{Field: "productName", Operator: "$containsi", Values: []string{"Kopi"}})
	require.NoError(t, err)
	assert.Equal(t, `LOWER(products.product_name) LIKE ? ESCAPE '\'`, pred.sql)
	assert.Equal(t, []any{"%kopi%"}, pred.args)

	pred, err = buildPredicate("products.category_id", Int, Condition{Field: "category", Operator: "$null", Values: []string{"false"}})
	require.NoError(t, err)
	assert.Equal(t, "products.category_id IS NOT NULL", pred.sql)

	pred, err = buildPredicate("products.id", Int, Condition{Field: "id", Operator: "$in", Values: []string{"1", "2"}})
	require.NoError(t, err)
	assert.Equal(t, "products.id IN ?", pred.sql)
	assert.Equal(t, []any{[]any{1, 2}}, pred.args)
}

func TestLikeOperatorsMatchWildcardsLiterally(t *testing.T) {
	pred, err := buildPredicate("products.product_name", String, Condition{Field: "productName", Operator: "$contains", Values: []string{"50%"}})
	require.NoError(t, err)
	assert.Equal(t, `products.product_name LIKE ? ESCAPE '\'`, pred.sql)
	assert.Equal(t, []any{`%50\%%`}, pred.args)

	pred, err = buildPredicate("products.slug", String, Condition{Field: "slug", Operator: "$startsWith", Values: []string{`a_b\c`}})
	require.NoError(t, err)
	assert.Equal(t, []any{`a\_b\\c%`}, pred.args)

	pred, err = buildPredicate("products.product_name", String, Condition{Field: "productName", Operator: "$containsi", Values: []string{"Kopi_Tubruk"}})
	require.NoError(t, err)
	assert.Equal(t, []any{`%kopi\_tubruk%`}, pred.args)
}

func TestHugePageIsRejected(t *testing.T) {
	_, err := FromRaw("pagination[page]=9223372036854775807")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = FromRaw("pagination[page]=92233720368547759&pagination[pageSize]=100")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = FromRaw("pagination[start]=9223372036854775807&pagination[limit]=1")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = Params{Page: math.MaxInt, PageSize: 25}.Build(productSchema)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	p := mustParse(t, "pagination[page]=1000&pagination[pageSize]=100")
	q, err := p.Build(productSchema)
	require.NoError(t, err)
	assert.Equal(t, 1000, q.Page)
}

func TestParseIgnoresUnrelatedKeys(t *testing.T) {
	p, err := Parse(url.Values{"locale": {"en"}, "status": {"published"}})
	require.NoError(t, err)
	assert.Empty(t, p.Filters)
}
