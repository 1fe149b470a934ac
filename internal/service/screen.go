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

type ScreenService struct {
	screens   *repository.ScreenRepository
	sequences *repository.SequenceRepository
	logger    *zap.Logger
}

func NewScreenService(screens *repository.ScreenRepository, sequences *repository.SequenceRepository, logger *zap.Logger) *ScreenService {
	return &ScreenService{screens: screens, sequences: sequences, logger: logger}
}

func (s *ScreenService) Create(ctx context.Context, req *dto.CreateScreenRequest) (*dto.ScreenResponse, error) {
	value, err := s.sequences.Next(ctx, "screen_code")
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	screen := &model.Screen{
		Code: fmt.Sprintf("SCRN%03d", value),
		Name: req.Name,
		URL:  req.URL,
		Icon: req.Icon,
	}
	if err := s.screens.Create(ctx, screen); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.logger.Info("screen created", zap.String("code", screen.Code))
	return screenToResponse(screen), nil
}

func (s *ScreenService) Get(ctx context.Context, id uint) (*dto.ScreenResponse, error) {
	screen, err := s.screens.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return screenToResponse(screen), nil
}

func (s *ScreenService) List(ctx context.Context) ([]dto.ScreenResponse, error) {
	screens, err := s.screens.ListAll(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.ScreenResponse, 0, len(screens))
	for i := range screens {
		out = append(out, *screenToResponse(&screens[i]))
	}
	return out, nil
}

func (s *ScreenService) Update(ctx context.Context, id uint, req *dto.UpdateScreenRequest) (*dto.ScreenResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.URL != "" {
		updates["url"] = req.URL
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}

	if len(updates) > 0 {
		if err := s.screens.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *ScreenService) Delete(ctx context.Context, id uint) error {
	if err := s.screens.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func screenToResponse(screen *model.Screen) *dto.ScreenResponse {
	return &dto.ScreenResponse{
		ID:        screen.ID,
		Code:      screen.Code,
		Name:      screen.Name,
		URL:       screen.URL,
		Icon:      screen.Icon,
		CreatedAt: screen.CreatedAt,
		UpdatedAt: screen.UpdatedAt,
	}
}
