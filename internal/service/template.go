package service

import (
	"bytes"
	"context"
	"errors"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"github.com/medicore-health/hms/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TemplateService manages email templates. Every template field, the
// recipient included, may carry {{ }} expressions resolved against the data
// map at send time.
type TemplateService struct {
	templates *repository.TemplateRepository
	mailer    Mailer
	logger    *zap.Logger
}

func NewTemplateService(templates *repository.TemplateRepository, mailer Mailer, logger *zap.Logger) *TemplateService {
	return &TemplateService{templates: templates, mailer: mailer, logger: logger}
}

func (s *TemplateService) Create(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if err := validateTemplateFields(req.From, req.To, req.Subject, req.Body); err != nil {
		return nil, err
	}
	tpl := &model.EmailTemplate{
		From:    req.From,
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.templates.Create(ctx, tpl); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return templateToResponse(tpl), nil
}

func (s *TemplateService) Get(ctx context.Context, id uint) (*dto.TemplateResponse, error) {
	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return templateToResponse(tpl), nil
}

func (s *TemplateService) List(ctx context.Context) ([]dto.TemplateResponse, error) {
	templates, err := s.templates.ListAll(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	out := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		out = append(out, *templateToResponse(&templates[i]))
	}
	return out, nil
}

func (s *TemplateService) Update(ctx context.Context, id uint, req *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	updates := map[string]interface{}{}
	if req.From != "" {
		updates["from_address"] = req.From
	}
	if req.To != "" {
		updates["to_address"] = req.To
	}
	if req.Subject != "" {
		updates["subject"] = req.Subject
	}
	if req.Body != "" {
		updates["body"] = req.Body
	}
	if len(updates) == 0 {
		return s.Get(ctx, id)
	}
	if err := s.templates.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return s.Get(ctx, id)
}

func (s *TemplateService) Delete(ctx context.Context, id uint) error {
	if err := s.templates.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

// RenderedMail is a template after substitution, ready for delivery.
type RenderedMail struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Render substitutes data into every field of the stored template.
func (s *TemplateService) Render(ctx context.Context, id uint, data map[string]any) (*RenderedMail, error) {
	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return renderTemplate(tpl, data)
}

// Send renders the template and hands it to the mailer.
func (s *TemplateService) Send(ctx context.Context, req *dto.SendTemplateRequest) error {
	mail, err := s.Render(ctx, req.TemplateID, req.Data)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(mail.From, mail.To, mail.Subject, mail.Body); err != nil {
		s.logger.Error("templated mail delivery failed",
			zap.Uint("template_id", req.TemplateID),
			zap.Error(err))
		return apperrors.WrapError(apperrors.ErrServiceUnavailable, err)
	}
	return nil
}

func renderTemplate(tpl *model.EmailTemplate, data map[string]any) (*RenderedMail, error) {
	fields := map[string]string{
		"from":    tpl.From,
		"to":      tpl.To,
		"subject": tpl.Subject,
		"body":    tpl.Body,
	}
	rendered := map[string]string{}
	for name, text := range fields {
		out, err := renderField(name, text, data)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		rendered[name] = out
	}
	return &RenderedMail{
		From:    rendered["from"],
		To:      rendered["to"],
		Subject: rendered["subject"],
		Body:    rendered["body"],
	}, nil
}

func renderField(name, text string, data map[string]any) (string, error) {
	t, err := template.New(name).Funcs(sprig.FuncMap()).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func validateTemplateFields(fields ...string) error {
	for _, text := range fields {
		if _, err := template.New("validate").Funcs(sprig.FuncMap()).Parse(text); err != nil {
			return apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
	}
	return nil
}

func templateToResponse(tpl *model.EmailTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:        tpl.ID,
		From:      tpl.From,
		To:        tpl.To,
		Subject:   tpl.Subject,
		Body:      tpl.Body,
		CreatedAt: tpl.CreatedAt,
		UpdatedAt: tpl.UpdatedAt,
	}
}
