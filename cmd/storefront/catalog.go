package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"Go-Storefront/pkg/storefront"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// await settles a hook and turns its state back into a value and an error.
func await[T any](ctx context.Context, h *storefront.Hook[T]) (T, error) {
	defer h.Close()
	var zero T
	if err := h.Wait(ctx); err != nil {
		return zero, err
	}
	_, res, errMsg := h.State()
	if errMsg != "" {
		return zero, errors.New(errMsg)
	}
	if res == nil {
		return zero, nil
	}
	return *res, nil
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printProducts(w io.Writer, products []storefront.Product) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tSLUG\tNAME\tPRICE\tSTOCK\tCATEGORY")
	for _, p := range products {
		a := p.Attributes
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%d\t%s\n", p.ID, a.Slug, a.ProductName, a.Price, a.Stock, a.Category.Data.Attributes.Slug)
	}
	return tw.Flush()
}

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			cats, err := await(cmd.Context(), a.client.UseCategories(cmd.Context()))
			if err != nil {
				return err
			}
			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tSLUG\tNAME")
			for _, c := range cats {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Attributes.Slug, c.Attributes.CategoryName)
			}
			return tw.Flush()
		},
	}
}

func newProductsCommand() *cobra.Command {
	var (
		q        storefront.ProductQuery
		featured bool
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("featured") {
				q.Featured = &featured
			}
			a := appFrom(cmd)
			products, err := await(cmd.Context(), a.client.UseProducts(cmd.Context(), q))
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), products)
		},
	}
	cmd.Flags().StringVar(&q.Category, "category", "", "category slug")
	cmd.Flags().StringVar(&q.Subcategory, "subcategory", "", "subcategory slug")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured products")
	cmd.Flags().StringVar(&q.Search, "search", "", "match product names")
	cmd.Flags().StringVar(&q.Sort, "sort", "", "sort expression, e.g. price:asc")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "maximum number of products")
	cmd.Flags().IntVar(&q.Page, "page", 0, "page number")
	return cmd
}

func newProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product <slug>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			p, err := await(cmd.Context(), a.client.UseProduct(cmd.Context(), args[0]))
			if err != nil {
				return err
			}
			attr := p.Attributes
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", attr.ProductName, attr.Slug)
			fmt.Fprintf(w, "price:    %.2f\n", attr.Price)
			fmt.Fprintf(w, "stock:    %d\n", attr.Stock)
			if attr.Taste != "" {
				fmt.Fprintf(w, "taste:    %s\n", attr.Taste)
			}
			if attr.Origin != "" {
				fmt.Fprintf(w, "origin:   %s\n", attr.Origin)
			}
			if slug := attr.Category.Data.Attributes.Slug; slug != "" {
				fmt.Fprintf(w, "category: %s\n", slug)
			}
			for _, img := range attr.Images.Data {
				fmt.Fprintf(w, "image:    %s\n", img.Attributes.URL)
			}
			if a.loved.Contains(p.ID) {
				fmt.Fprintln(w, "loved")
			}
			if attr.Description != "" {
				fmt.Fprintf(w, "\n%s\n", attr.Description)
			}
			return nil
		},
	}
}

func newReviewsCommand() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "reviews <productId>",
		Short: "Show a product's reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			h := storefront.Use(cmd.Context(), a.client.FetchReviews(args[0], page))
			res, err := await(cmd.Context(), h)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%.1f average from %d reviews (page %d of %d)\n",
				res.Stats.Average, res.Stats.Count, res.Pagination.Page, res.Pagination.PageCount)
			tw := table(w)
			fmt.Fprintln(tw, "ID\tRATING\tAUTHOR\tHELPFUL\tTITLE")
			for _, r := range res.Reviews {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ID, stars(r.Attributes.Rating),
					r.Attributes.AuthorName, strconv.Itoa(r.Attributes.HelpfulCount), r.Attributes.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func stars(n int) string {
	s := make([]rune, 0, 5)
	for i := 1; i <= 5; i++ {
		if i <= n {
			s = append(s, '*')
		} else {
			s = append(s, '.')
		}
	}
	return string(s)
}
