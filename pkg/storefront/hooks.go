package storefront

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

var ErrProductNotFound = errors.New("Product not found")

// ProductQuery narrows a product listing. Zero values leave a filter out.
type ProductQuery struct {
	Category    string
	Subcategory string
	Featured    *bool
	Active      *bool
	Search      string
	Sort        string
	Limit       int
	Page        int
}

func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	v.Set("populate", "*")
	if q.Category != "" {
		v.Set("filters[category][slug][$eq]", q.Category)
	}
	if q.Subcategory != "" {
		v.Set("filters[subcategory][slug][$eq]", q.Subcategory)
	}
	if q.Featured != nil {
		v.Set("filters[isFeatured][$eq]", strconv.FormatBool(*q.Featured))
	}
	if q.Active != nil {
		v.Set("filters[isActive][$eq]", strconv.FormatBool(*q.Active))
	}
	if q.Search != "" {
		v.Set("filters[productName][$containsi]", q.Search)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("pagination[page]", strconv.Itoa(q.Page))
		if q.Limit > 0 {
			v.Set("pagination[pageSize]", strconv.Itoa(q.Limit))
		}
	} else if q.Limit > 0 {
		v.Set("pagination[limit]", strconv.Itoa(q.Limit))
	}
	return v
}

func (c *Client) FetchCategories() Fetch[[]Category] {
	return func(ctx context.Context) ([]Category, error) {
		var env envelope
		if err := c.get(ctx, "/categories", url.Values{"populate": {"*"}}, &env); err != nil {
			return nil, err
		}
		var flat []FlatCategory
		if err := decodeData(&env, &flat); err != nil {
			return nil, err
		}
		return TransformCategories(flat), nil
	}
}

func (c *Client) FetchProducts(q ProductQuery) Fetch[[]Product] {
	return func(ctx context.Context) ([]Product, error) {
		var env envelope
		if err := c.get(ctx, "/products", q.Values(), &env); err != nil {
			return nil, err
		}
		var flat []FlatProduct
		if err := decodeData(&env, &flat); err != nil {
			return nil, err
		}
		return TransformProducts(flat), nil
	}
}

func (c *Client) FetchProduct(slug string) Fetch[Product] {
	return func(ctx context.Context) (Product, error) {
		v := url.Values{}
		v.Set("filters[slug][$eq]", slug)
		v.Set("populate", "*")
		var env envelope
		if err := c.get(ctx, "/products", v, &env); err != nil {
			return Product{}, err
		}
		var flat []FlatProduct
		if err := decodeData(&env, &flat); err != nil {
			return Product{}, err
		}
		if len(flat) == 0 {
			return Product{}, ErrProductNotFound
		}
		return TransformProduct(flat[0]), nil
	}
}

func (c *Client) FetchSubcategories(categorySlug string) Fetch[[]Subcategory] {
	return func(ctx context.Context) ([]Subcategory, error) {
		v := url.Values{}
		v.Set("populate", "category")
		v.Set("sort", "order:asc")
		if categorySlug != "" {
			v.Set("filters[category][slug][$eq]", categorySlug)
		}
		var env envelope
		if err := c.get(ctx, "/subcategories", v, &env); err != nil {
			return nil, err
		}
		var flat []FlatSubcategory
		if err := decodeData(&env, &flat); err != nil {
			return nil, err
		}
		return TransformSubcategories(flat), nil
	}
}

func (c *Client) FetchReviews(productID string, page int) Fetch[ReviewPage] {
	return func(ctx context.Context) (ReviewPage, error) {
		v := url.Values{}
		if page > 0 {
			v.Set("pagination[page]", strconv.Itoa(page))
		}
		var env envelope
		if err := c.get(ctx, "/reviews/product/"+url.PathEscape(productID), v, &env); err != nil {
			return ReviewPage{}, err
		}
		var flat []FlatReview
		if err := decodeData(&env, &flat); err != nil {
			return ReviewPage{}, err
		}
		res := ReviewPage{Reviews: TransformReviews(flat)}
		if env.Meta.Stats != nil {
			res.Stats = *env.Meta.Stats
		}
		if env.Meta.Pagination != nil {
			res.Pagination = *env.Meta.Pagination
		}
		return res, nil
	}
}

func (c *Client) UseCategories(ctx context.Context) *Hook[[]Category] {
	return Use(ctx, c.FetchCategories())
}

func (c *Client) UseProducts(ctx context.Context, q ProductQuery) *Hook[[]Product] {
	return Use(ctx, c.FetchProducts(q))
}

func (c *Client) UseProduct(ctx context.Context, slug string) *Hook[Product] {
	return Use(ctx, c.FetchProduct(slug))
}

func (c *Client) UseFeaturedProducts(ctx context.Context, limit int) *Hook[[]Product] {
	featured := true
	return Use(ctx, c.FetchProducts(ProductQuery{Featured: &featured, Limit: limit}))
}

func (c *Client) UseProductsByCategory(ctx context.Context, categorySlug string) *Hook[[]Product] {
	return Use(ctx, c.FetchProducts(ProductQuery{Category: categorySlug}))
}

func (c *Client) UseSubcategories(ctx context.Context, categorySlug string) *Hook[[]Subcategory] {
	return Use(ctx, c.FetchSubcategories(categorySlug))
}

func (c *Client) UseReviews(ctx context.Context, productID string) *Hook[ReviewPage] {
	return Use(ctx, c.FetchReviews(productID, 1))
}
