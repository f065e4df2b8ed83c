package handlers

import (
	"encoding/json"

	"Go-Storefront/internal/utils/query"

	"github.com/gofiber/fiber/v2"
)

func queryParams(c *fiber.Ctx) (query.Params, error) {
	return query.FromRaw(string(c.Request().URI().QueryString()))
}

// bindData accepts both {"data": {...}} and a bare object.
func bindData(c *fiber.Ctx, dst any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	body := c.Body()
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		body = envelope.Data
	}
	return json.Unmarshal(body, dst)
}
