package service

import (
	"context"
	"errors"
	"time"

	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AppointmentService struct {
	appointments *repository.AppointmentRepository
	patients     *repository.PatientRepository
	employees    *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewAppointmentService(
	appointments *repository.AppointmentRepository,
	patients *repository.PatientRepository,
	employees *repository.EmployeeRepository,
	logger *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		employees:    employees,
		logger:       logger,
	}
}

// Create books a visit after checking both parties exist and the doctor's
// slot is free.
func (s *AppointmentService) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WrapError(apperrors.ErrNotFound, errors.New("patient not found"))
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if _, err := s.employees.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WrapError(apperrors.ErrNotFound, errors.New("doctor not found"))
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	conflict, err := s.appointments.HasConflict(ctx, req.DoctorID, visitDate, req.VisitTime, 0)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if conflict {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("doctor already booked for this slot"))
	}

	appointment := &model.Appointment{
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		VisitDate:        visitDate,
		VisitTime:        req.VisitTime,
		VisitType:        req.VisitType,
		DoctorDepartment: req.DoctorDepartment,
		AdditionalNotes:  req.AdditionalNotes,
		Status:           model.AppointmentScheduled,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.logger.Info("appointment booked",
		zap.Uint("appointment_id", appointment.ID),
		zap.Uint("doctor_id", req.DoctorID),
		zap.Uint("patient_id", req.PatientID))
	return appointmentToResponse(appointment), nil
}

func (s *AppointmentService) Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return appointmentToResponse(appointment), nil
}

func (s *AppointmentService) List(ctx context.Context, limit, offset int, filter *dto.AppointmentFilter) ([]dto.AppointmentResponse, int64, error) {
	q := repository.AppointmentQuery{
		PatientID: filter.PatientID,
		DoctorID:  filter.DoctorID,
		Status:    filter.Status,
	}
	if filter.Date != "" {
		if day, err := time.Parse("2006-01-02", filter.Date); err == nil {
			q.From = day
			q.To = day
		}
	}

	appointments, total, err := s.appointments.List(ctx, limit, offset, q)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, *appointmentToResponse(&appointments[i]))
	}
	return out, total, nil
}

func (s *AppointmentService) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	current, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	updates := map[string]interface{}{}
	visitDate := current.VisitDate
	visitTime := current.VisitTime
	if req.VisitDate != "" {
		parsed, perr := time.Parse("2006-01-02", req.VisitDate)
		if perr != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, perr)
		}
		visitDate = parsed
		updates["visit_date"] = parsed
	}
	if req.VisitTime != "" {
		visitTime = req.VisitTime
		updates["visit_time"] = req.VisitTime
	}
	if req.VisitType != "" {
		updates["visit_type"] = req.VisitType
	}
	if req.DoctorDepartment != "" {
		updates["doctor_department"] = req.DoctorDepartment
	}
	if req.AdditionalNotes != nil {
		updates["additional_notes"] = *req.AdditionalNotes
	}
	if req.Status != "" {
		if err := validStatusTransition(current.Status, req.Status); err != nil {
			return nil, err
		}
		updates["status"] = req.Status
	}

	if _, moved := updates["visit_date"]; moved || req.VisitTime != "" {
		conflict, cerr := s.appointments.HasConflict(ctx, current.DoctorID, visitDate, visitTime, id)
		if cerr != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, cerr)
		}
		if conflict {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
				errors.New("doctor already booked for this slot"))
		}
	}

	if len(updates) > 0 {
		if err := s.appointments.Update(ctx, id, updates); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *AppointmentService) Cancel(ctx context.Context, id uint) error {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if appointment.Status == model.AppointmentCompleted {
		return apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("completed appointments cannot be cancelled"))
	}
	if err := s.appointments.Update(ctx, id, map[string]interface{}{
		"status": model.AppointmentCancelled,
	}); err != nil {
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// validStatusTransition enforces Scheduled -> In-Progress -> Completed, with
// Cancelled reachable from any non-terminal state.
func validStatusTransition(from, to string) error {
	if from == to {
		return nil
	}
	allowed := map[string][]string{
		model.AppointmentScheduled:  {model.AppointmentInProgress, model.AppointmentCancelled},
		model.AppointmentInProgress: {model.AppointmentCompleted, model.AppointmentCancelled},
	}
	for _, next := range allowed[from] {
		if next == to {
			return nil
		}
	}
	return apperrors.WrapError(apperrors.ErrInvalidInput,
		errors.New("invalid status transition from "+from+" to "+to))
}

func appointmentToResponse(a *model.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:               a.ID,
		PatientID:        a.PatientID,
		DoctorID:         a.DoctorID,
		VisitDate:        a.VisitDate,
		VisitTime:        a.VisitTime,
		VisitType:        a.VisitType,
		DoctorDepartment: a.DoctorDepartment,
		AdditionalNotes:  a.AdditionalNotes,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
