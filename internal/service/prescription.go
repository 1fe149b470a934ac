package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PrescriptionService struct {
	prescriptions *repository.PrescriptionRepository
	appointments  *repository.AppointmentRepository
	logger        *zap.Logger
}

func NewPrescriptionService(
	prescriptions *repository.PrescriptionRepository,
	appointments *repository.AppointmentRepository,
	logger *zap.Logger,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		appointments:  appointments,
		logger:        logger,
	}
}

// Create attaches a prescription to an appointment. One prescription per
// appointment; a second create is rejected.
func (s *PrescriptionService) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	appointment, err := s.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WrapError(apperrors.ErrNotFound, errors.New("appointment not found"))
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if appointment.PatientID != req.PatientID || appointment.DoctorID != req.DoctorID {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("prescription parties do not match the appointment"))
	}

	if _, err := s.prescriptions.GetByAppointmentID(ctx, req.AppointmentID); err == nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("appointment already has a prescription"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	visitDate := appointment.VisitDate
	if req.VisitDate != nil {
		if parsed, perr := time.Parse("2006-01-02", *req.VisitDate); perr == nil {
			visitDate = parsed
		}
	}

	status := req.Status
	if status == "" {
		status = model.PrescriptionDraft
	}

	prescription := &model.Prescription{
		AppointmentID:   req.AppointmentID,
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		VisitDate:       visitDate,
		BloodPressure:   req.BloodPressure,
		Pulse:           req.Pulse,
		Height:          req.Height,
		Weight:          req.Weight,
		BMI:             req.BMI,
		SpO2:            req.SpO2,
		Complaints:      mustJSON(req.Complaints),
		Medicines:       mustJSON(req.Medicines),
		Advice:          req.Advice,
		TestsPrescribed: req.TestsPrescribed,
		NextVisit:       req.NextVisit,
		DoctorNotes:     req.DoctorNotes,
		Status:          status,
	}
	if err := s.prescriptions.Create(ctx, prescription); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.logger.Info("prescription created",
		zap.Uint("prescription_id", prescription.ID),
		zap.Uint("appointment_id", req.AppointmentID))
	return prescriptionToResponse(prescription), nil
}

func (s *PrescriptionService) Get(ctx context.Context, id uint) (*dto.PrescriptionResponse, error) {
	prescription, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return prescriptionToResponse(prescription), nil
}

func (s *PrescriptionService) GetByAppointment(ctx context.Context, appointmentID uint) (*dto.PrescriptionResponse, error) {
	prescription, err := s.prescriptions.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return prescriptionToResponse(prescription), nil
}

func (s *PrescriptionService) List(ctx context.Context, limit, offset int, patientID, doctorID uint, status string) ([]dto.PrescriptionResponse, int64, error) {
	prescriptions, total, err := s.prescriptions.List(ctx, limit, offset, patientID, doctorID, status)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		out = append(out, *prescriptionToResponse(&prescriptions[i]))
	}
	return out, total, nil
}

// Update edits a prescription. Completed prescriptions are read-only.
func (s *PrescriptionService) Update(ctx context.Context, id uint, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	current, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if current.Status == model.PrescriptionCompleted {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput,
			errors.New("completed prescriptions cannot be modified"))
	}

	updates := map[string]interface{}{}
	if req.BloodPressure != nil {
		updates["blood_pressure"] = *req.BloodPressure
	}
	if req.Pulse != nil {
		updates["pulse"] = *req.Pulse
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.BMI != nil {
		updates["bmi"] = *req.BMI
	}
	if req.SpO2 != nil {
		updates["spo2"] = *req.SpO2
	}
	if req.Complaints != nil {
		updates["complaints"] = mustJSON(req.Complaints)
	}
	if req.Medicines != nil {
		updates["medicines"] = mustJSON(req.Medicines)
	}
	if req.Advice != nil {
		updates["advice"] = *req.Advice
	}
	if req.TestsPrescribed != nil {
		updates["tests_prescribed"] = *req.TestsPrescribed
	}
	if req.NextVisit != nil {
		updates["next_visit"] = *req.NextVisit
	}
	if req.DoctorNotes != nil {
		updates["doctor_notes"] = *req.DoctorNotes
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := s.prescriptions.Update(ctx, id, updates); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *PrescriptionService) Delete(ctx context.Context, id uint) error {
	if err := s.prescriptions.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func prescriptionToResponse(p *model.Prescription) *dto.PrescriptionResponse {
	resp := &dto.PrescriptionResponse{
		ID:              p.ID,
		AppointmentID:   p.AppointmentID,
		PatientID:       p.PatientID,
		DoctorID:        p.DoctorID,
		VisitDate:       p.VisitDate,
		BloodPressure:   p.BloodPressure,
		Pulse:           p.Pulse,
		Height:          p.Height,
		Weight:          p.Weight,
		BMI:             p.BMI,
		SpO2:            p.SpO2,
		Advice:          p.Advice,
		TestsPrescribed: p.TestsPrescribed,
		NextVisit:       p.NextVisit,
		DoctorNotes:     p.DoctorNotes,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if len(p.Complaints) > 0 {
		_ = json.Unmarshal(p.Complaints, &resp.Complaints)
	}
	if len(p.Medicines) > 0 {
		_ = json.Unmarshal(p.Medicines, &resp.Medicines)
	}
	return resp
}
