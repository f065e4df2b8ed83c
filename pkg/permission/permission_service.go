package permission

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/pkg/mapper"

	"gorm.io/gorm"
)

type (
	PermissionService interface {
		GetRoles(ctx context.Context) ([]domain.Role, error)
		GetRole(ctx context.Context, id string) (domain.Role, error)
		UpdateRole(ctx context.Context, id string, req domain.UpdateRoleRequest) (domain.Role, error)
		IsAllowed(ctx context.Context, roleType string, action string) (bool, error)
	}

	permissionService struct {
		permissionRepository PermissionRepository

		mu    sync.RWMutex
		cache map[string]map[string]bool
	}
)

var known = func() map[string]bool {
	m := make(map[string]bool, len(domain.KnownActions))
	for _, a := range domain.KnownActions {
		m[a] = true
	}
	return m
}()

func NewPermissionService(permissionRepository PermissionRepository) PermissionService {
	return &permissionService{
		permissionRepository: permissionRepository,
		cache:                map[string]map[string]bool{},
	}
}

func (s *permissionService) GetRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.permissionRepository.GetRoles(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		res = append(res, *mapper.Role(r))
	}
	return res, nil
}

func (s *permissionService) find(ctx context.Context, id string) (*entities.Role, error) {
	roleID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, domain.ErrParseID
	}

	role, err := s.permissionRepository.GetRole(ctx, uint(roleID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

// GetRole returns the role with every known action listed, enabled or not.
func (s *permissionService) GetRole(ctx context.Context, id string) (domain.Role, error) {
	role, err := s.find(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}

	res := *mapper.Role(role)
	perms := make(map[string]bool, len(domain.KnownActions))
	for _, a := range domain.KnownActions {
		perms[a] = false
	}
	for a, enabled := range res.Permissions {
		perms[a] = enabled
	}
	res.Permissions = perms
	return res, nil
}

func (s *permissionService) UpdateRole(ctx context.Context, id string, req domain.UpdateRoleRequest) (domain.Role, error) {
	role, err := s.find(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}

	var enabled []string
	for action, on := range req.Permissions {
		if !known[action] {
			return domain.Role{}, domain.ErrUnknownAction
		}
		if on {
			enabled = append(enabled, action)
		}
	}
	sort.Strings(enabled)

	if req.Name != "" {
		role.Name = req.Name
	}
	if req.Description != "" {
		role.Description = req.Description
	}

	if err := s.permissionRepository.UpdateRole(ctx, role, enabled); err != nil {
		return domain.Role{}, err
	}

	s.mu.Lock()
	delete(s.cache, role.Type)
	s.mu.Unlock()

	return s.GetRole(ctx, id)
}

// IsAllowed reports whether roleType holds action. Admins hold everything.
func (s *permissionService) IsAllowed(ctx context.Context, roleType string, action string) (bool, error) {
	if roleType == entities.RoleTypeAdmin {
		return true, nil
	}

	s.mu.RLock()
	actions, ok := s.cache[roleType]
	s.mu.RUnlock()
	if ok {
		return actions[action], nil
	}

	role, err := s.permissionRepository.GetRoleByType(ctx, roleType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	actions = make(map[string]bool, len(role.Permissions))
	for _, p := range role.Permissions {
		if p.Enabled {
			actions[p.Action] = true
		}
	}

	s.mu.Lock()
	s.cache[roleType] = actions
	s.mu.Unlock()

	return actions[action], nil
}
