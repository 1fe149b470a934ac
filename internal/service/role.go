package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleService struct {
	roles     *repository.RoleRepository
	screens   *repository.ScreenRepository
	sequences *repository.SequenceRepository
	logger    *zap.Logger
}

func NewRoleService(
	roles *repository.RoleRepository,
	screens *repository.ScreenRepository,
	sequences *repository.SequenceRepository,
	logger *zap.Logger,
) *RoleService {
	return &RoleService{roles: roles, screens: screens, sequences: sequences, logger: logger}
}

// Create registers a role with a generated R-code. Screen codes must refer
// to existing screens.
func (s *RoleService) Create(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if _, err := s.roles.GetByName(ctx, req.Name); err == nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("role name already exists"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.validateScreens(ctx, req.Screens); err != nil {
		return nil, err
	}

	value, err := s.sequences.Next(ctx, "role_id")
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	role := &model.Role{
		RoleID:      fmt.Sprintf("R%04d", value),
		Name:        req.Name,
		Description: req.Description,
		Permissions: mustJSON(req.Permissions),
		Screens:     mustJSON(req.Screens),
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.logger.Info("role created",
		zap.String("role_id", role.RoleID),
		zap.String("name", role.Name))
	return roleToResponse(role), nil
}

func (s *RoleService) Get(ctx context.Context, id uint) (*dto.RoleResponse, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return roleToResponse(role), nil
}

func (s *RoleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.roles.ListAll(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, *roleToResponse(&roles[i]))
	}
	return out, nil
}

func (s *RoleService) Update(ctx context.Context, id uint, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Permissions != nil {
		updates["permissions"] = mustJSON(req.Permissions)
	}
	if req.Screens != nil {
		if err := s.validateScreens(ctx, req.Screens); err != nil {
			return nil, err
		}
		updates["screens"] = mustJSON(req.Screens)
	}

	if len(updates) > 0 {
		if err := s.roles.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *RoleService) Delete(ctx context.Context, id uint) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *RoleService) validateScreens(ctx context.Context, codes []string) error {
	for _, code := range codes {
		if _, err := s.screens.GetByCode(ctx, code); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WrapError(apperrors.ErrInvalidInput,
					errors.New("unknown screen code "+code))
			}
			return apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return nil
}

func roleToResponse(role *model.Role) *dto.RoleResponse {
	resp := &dto.RoleResponse{
		ID:          role.ID,
		RoleID:      role.RoleID,
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
	_ = unmarshalJSON(role.Permissions, &resp.Permissions)
	_ = unmarshalJSON(role.Screens, &resp.Screens)
	return resp
}
