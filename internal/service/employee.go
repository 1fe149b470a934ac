package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/medicore-health/hms/config"
	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmployeeService struct {
	employees *repository.EmployeeRepository
	roles     *repository.RoleRepository
	sequences *repository.SequenceRepository
	templates *TemplateService
	defaults  config.DefaultsConfig
	mail      config.MailConfig
	logger    *zap.Logger
}

func NewEmployeeService(
	employees *repository.EmployeeRepository,
	roles *repository.RoleRepository,
	sequences *repository.SequenceRepository,
	templates *TemplateService,
	defaults config.DefaultsConfig,
	mail config.MailConfig,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		roles:     roles,
		sequences: sequences,
		templates: templates,
		defaults:  defaults,
		mail:      mail,
		logger:    logger,
	}
}

// Create registers an employee with a generated EMP code and the default
// password. The first role code is the primary role; the rest are secondary.
func (s *EmployeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.CreateEmployeeResponse, error) {
	if exists, err := s.employees.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	} else if exists {
		return nil, apperrors.ErrEmailExists
	}
	if exists, err := s.employees.ExistsByPhone(ctx, req.Phone); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	} else if exists {
		return nil, apperrors.ErrPhoneExists
	}

	primary, secondaries, err := s.resolveRoles(ctx, req.EmployeeType)
	if err != nil {
		return nil, err
	}

	employeeID, err := s.nextEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaults.EmployeePassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	dateOfJoining := time.Now()
	if req.DateOfJoining != nil {
		if parsed, perr := time.Parse("2006-01-02", *req.DateOfJoining); perr == nil {
			dateOfJoining = parsed
		}
	}

	employee := &model.Employee{
		EmployeeID:            employeeID,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		RoleID:                &primary.ID,
		Role:                  primary.Name,
		SecondaryRoles:        mustJSON(secondaries),
		Availability:          mustJSON(req.Availability),
		Price:                 req.Price,
		Department:            req.Department,
		Salary:                req.Salary,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		DateOfJoining:         dateOfJoining,
		Status:                "active",
		LicenseNumber:         req.LicenseNumber,
		Specialization:        req.Specialization,
		PasswordHash:          string(hash),
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.logger.Info("employee created",
		zap.String("employee_id", employeeID),
		zap.String("role", primary.Name))

	s.sendOnboardingMail(employee)

	return &dto.CreateEmployeeResponse{
		Message:    "Employee registered successfully",
		Name:       employee.FullName(),
		EmployeeID: employee.ID,
		Note:       "Default password assigned; employee must change it on first login",
	}, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*dto.EmployeeResponse, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return employeeToResponse(employee), nil
}

// GetByCode resolves an employee by the EMP business code.
func (s *EmployeeService) GetByCode(ctx context.Context, code string) (*dto.EmployeeResponse, error) {
	employee, err := s.employees.GetByEmployeeID(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return employeeToResponse(employee), nil
}

func (s *EmployeeService) List(ctx context.Context, limit, offset int, role, department, status, search string) ([]dto.EmployeeResponse, int64, error) {
	employees, total, err := s.employees.List(ctx, limit, offset, role, department, status, search)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, *employeeToResponse(&employees[i]))
	}
	return out, total, nil
}

func (s *EmployeeService) ListDoctors(ctx context.Context, department string) ([]dto.EmployeeResponse, error) {
	doctors, err := s.employees.ListDoctors(ctx, department)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.EmployeeResponse, 0, len(doctors))
	for i := range doctors {
		out = append(out, *employeeToResponse(&doctors[i]))
	}
	return out, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Phone != "" {
		if exists, err := s.employees.ExistsByPhone(ctx, req.Phone); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		} else if exists {
			current, gerr := s.employees.GetByID(ctx, id)
			if gerr != nil || current.Phone != req.Phone {
				return nil, apperrors.ErrPhoneExists
			}
		}
		updates["phone"] = req.Phone
	}
	if req.Availability != nil {
		updates["availability"] = mustJSON(req.Availability)
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.EmergencyContactName != nil {
		updates["emergency_contact_name"] = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		updates["emergency_contact_phone"] = *req.EmergencyContactPhone
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.LicenseNumber != nil {
		updates["license_number"] = *req.LicenseNumber
	}
	if req.Specialization != nil {
		updates["specialization"] = *req.Specialization
	}

	if len(updates) > 0 {
		if err := s.employees.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func (s *EmployeeService) resolveRoles(ctx context.Context, codes []string) (*model.Role, []string, error) {
	var primary *model.Role
	var secondaries []string
	for i, code := range codes {
		role, err := s.roles.GetByRoleID(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.ErrInvalidRole
			}
			return nil, nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		if i == 0 {
			primary = role
		} else {
			secondaries = append(secondaries, role.Name)
		}
	}
	return primary, secondaries, nil
}

func (s *EmployeeService) nextEmployeeID(ctx context.Context) (string, error) {
	value, err := s.sequences.Next(ctx, "employee_id")
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return fmt.Sprintf("%s%0*d", s.defaults.EmployeeIDPrefix, s.defaults.EmployeeIDPadding, value), nil
}

// sendOnboardingMail delivers best-effort; registration never fails because
// the mail relay is down.
func (s *EmployeeService) sendOnboardingMail(employee *model.Employee) {
	if s.templates == nil || s.mail.OnboardingTemplate == "" {
		return
	}
	templateID, err := strconv.ParseUint(s.mail.OnboardingTemplate, 10, 32)
	if err != nil {
		s.logger.Warn("invalid onboarding template id",
			zap.String("value", s.mail.OnboardingTemplate))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := s.templates.Send(ctx, &dto.SendTemplateRequest{
			TemplateID: uint(templateID),
			Data: map[string]any{
				"name":        employee.FullName(),
				"email":       employee.Email,
				"employee_id": employee.EmployeeID,
				"role":        employee.Role,
				"password":    s.defaults.EmployeePassword,
			},
		})
		if err != nil {
			s.logger.Warn("onboarding mail not sent",
				zap.String("employee_id", employee.EmployeeID),
				zap.Error(err))
		}
	}()
}

func employeeToResponse(e *model.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:                    e.ID,
		EmployeeID:            e.EmployeeID,
		FirstName:             e.FirstName,
		LastName:              e.LastName,
		Email:                 e.Email,
		Phone:                 e.Phone,
		Role:                  e.Role,
		Price:                 e.Price,
		Department:            e.Department,
		Salary:                e.Salary,
		Address:               e.Address,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		DateOfJoining:         e.DateOfJoining,
		Status:                e.Status,
		LicenseNumber:         e.LicenseNumber,
		Specialization:        e.Specialization,
		LastLogin:             e.LastLogin,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
	if len(e.Availability) > 0 {
		var slots []dto.AvailabilitySlot
		if err := json.Unmarshal(e.Availability, &slots); err == nil {
			resp.Availability = slots
		}
	}
	return resp
}

func mustJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
