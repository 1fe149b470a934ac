package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/medicore-health/hms/config"
	"github.com/medicore-health/hms/internal/constants"
	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"github.com/medicore-health/hms/pkg/redis"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const patientStatsTTL = 5 * time.Minute

type PatientService struct {
	patients *repository.PatientRepository
	cache    redis.Client
	defaults config.DefaultsConfig
	logger   *zap.Logger
}

func NewPatientService(patients *repository.PatientRepository, cache redis.Client, defaults config.DefaultsConfig, logger *zap.Logger) *PatientService {
	return &PatientService{patients: patients, cache: cache, defaults: defaults, logger: logger}
}

// Create registers a patient. When no password is supplied the configured
// default is hashed in, so patients registered at the front desk can still
// log in later.
func (s *PatientService) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if req.Email == nil && req.Phone == nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("either email or phone is required"))
	}
	if req.Email != nil {
		if exists, err := s.patients.ExistsByEmail(ctx, *req.Email); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		} else if exists {
			return nil, apperrors.ErrEmailExists
		}
	}
	if req.Phone != nil {
		if exists, err := s.patients.ExistsByPhone(ctx, *req.Phone); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		} else if exists {
			return nil, apperrors.ErrPhoneExists
		}
	}

	password := req.Password
	if password == "" {
		password = s.defaults.PatientPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	patient := &model.Patient{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          req.Email,
		Gender:         req.Gender,
		BloodGroup:     req.BloodGroup,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
		PasswordHash:   string(hash),
	}
	if req.DateOfBirth != nil {
		if dob, perr := time.Parse("2006-01-02", *req.DateOfBirth); perr == nil {
			patient.DateOfBirth = &dob
		}
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	s.invalidateStats(ctx)

	s.logger.Info("patient created", zap.Uint("patient_id", patient.ID))
	return patientToResponse(patient), nil
}

func (s *PatientService) Get(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return patientToResponse(patient), nil
}

func (s *PatientService) List(ctx context.Context, limit, offset int, search string) ([]dto.PatientResponse, int64, error) {
	patients, total, err := s.patients.List(ctx, limit, offset, search)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, *patientToResponse(&patients[i]))
	}
	return out, total, nil
}

func (s *PatientService) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.DateOfBirth != nil {
		if dob, perr := time.Parse("2006-01-02", *req.DateOfBirth); perr == nil {
			updates["date_of_birth"] = dob
		}
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.BloodGroup != nil {
		updates["blood_group"] = *req.BloodGroup
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.MedicalHistory != nil {
		updates["medical_history"] = *req.MedicalHistory
	}

	if len(updates) > 0 {
		if err := s.patients.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		s.invalidateStats(ctx)
	}
	return s.Get(ctx, id)
}

func (s *PatientService) Delete(ctx context.Context, id uint) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	s.invalidateStats(ctx)
	return nil
}

// Stats serves the aggregate snapshot from Redis when warm; cache failures
// fall through to the database.
func (s *PatientService) Stats(ctx context.Context) (*repository.PatientStats, error) {
	if data, found, err := s.cache.Get(ctx, constants.CacheKeyPatientStats); err == nil && found {
		var cached repository.PatientStats
		if uerr := json.Unmarshal(data, &cached); uerr == nil {
			return &cached, nil
		}
	}

	stats, err := s.patients.Stats(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if data, merr := json.Marshal(stats); merr == nil {
		if cerr := s.cache.Set(ctx, constants.CacheKeyPatientStats, data, patientStatsTTL); cerr != nil {
			s.logger.Warn("failed to cache patient stats", zap.Error(cerr))
		}
	}
	return stats, nil
}

func (s *PatientService) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.CacheKeyPatientStats); err != nil {
		s.logger.Warn("failed to invalidate patient stats cache", zap.Error(err))
	}
}

func patientToResponse(p *model.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Email:          p.Email,
		DateOfBirth:    p.DateOfBirth,
		Gender:         p.Gender,
		BloodGroup:     p.BloodGroup,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
