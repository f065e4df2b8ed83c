package storefront

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

const RolePublic = "public"

// Role is a users-permissions role with the grant state of every action.
type Role struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var res struct {
		Roles []Role `json:"roles"`
	}
	if err := c.do(ctx, http.MethodGet, "/users-permissions/roles", nil, nil, true, &res); err != nil {
		return nil, err
	}
	return res.Roles, nil
}

func (c *Client) Role(ctx context.Context, id uint) (Role, error) {
	var res struct {
		Role Role `json:"role"`
	}
	path := "/users-permissions/roles/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, true, &res); err != nil {
		return Role{}, err
	}
	return res.Role, nil
}

func (c *Client) UpdateRole(ctx context.Context, role Role) (Role, error) {
	body := map[string]any{
		"name":        role.Name,
		"description": role.Description,
		"permissions": role.Permissions,
	}
	var res struct {
		Role Role `json:"role"`
	}
	path := "/users-permissions/roles/" + strconv.FormatUint(uint64(role.ID), 10)
	if err := c.do(ctx, http.MethodPut, path, nil, body, true, &res); err != nil {
		return Role{}, err
	}
	return res.Role, nil
}

// GrantPublic enables actions on the public role, leaving its other grants as they are.
func (c *Client) GrantPublic(ctx context.Context, actions []string) (Role, error) {
	roles, err := c.Roles(ctx)
	if err != nil {
		return Role{}, errors.Wrap(err, "list roles")
	}

	var id uint
	for _, r := range roles {
		if r.Type == RolePublic {
			id = r.ID
			break
		}
	}
	if id == 0 {
		return Role{}, errors.New("public role not found")
	}

	role, err := c.Role(ctx, id)
	if err != nil {
		return Role{}, errors.Wrap(err, "get public role")
	}
	if role.Permissions == nil {
		role.Permissions = make(map[string]bool, len(actions))
	}
	for _, a := range actions {
		role.Permissions[a] = true
	}
	return c.UpdateRole(ctx, role)
}
