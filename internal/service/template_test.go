package service

import (
	"strings"
	"testing"

	"github.com/medicore-health/hms/internal/model"
)

func TestRenderTemplateSubstitutesAllFields(t *testing.T) {
	tpl := &model.EmailTemplate{
		From:    "noreply@hms.local",
		To:      "{{ .email }}",
		Subject: "Welcome {{ .name }}",
		Body:    "<p>Hello {{ .name }}, your ID is {{ .employee_id }}.</p>",
	}

	mail, err := renderTemplate(tpl, map[string]any{
		"email":       "asha@example.com",
		"name":        "Asha",
		"employee_id": "EMP000042",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if mail.To != "asha@example.com" {
		t.Errorf("to = %q", mail.To)
	}
	if mail.Subject != "Welcome Asha" {
		t.Errorf("subject = %q", mail.Subject)
	}
	if !strings.Contains(mail.Body, "EMP000042") {
		t.Errorf("body missing employee id: %q", mail.Body)
	}
}

func TestRenderTemplateSprigFunctions(t *testing.T) {
	tpl := &model.EmailTemplate{
		From:    "noreply@hms.local",
		To:      "{{ .email | lower }}",
		Subject: "{{ .name | title }}",
		Body:    "{{ default \"patient\" .role }}",
	}

	mail, err := renderTemplate(tpl, map[string]any{
		"email": "ASHA@EXAMPLE.COM",
		"name":  "asha rao",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if mail.To != "asha@example.com" {
		t.Errorf("to = %q", mail.To)
	}
	if mail.Subject != "Asha Rao" {
		t.Errorf("subject = %q", mail.Subject)
	}
	if mail.Body != "patient" {
		t.Errorf("body = %q, want default applied", mail.Body)
	}
}

func TestRenderTemplateBadSyntax(t *testing.T) {
	tpl := &model.EmailTemplate{
		From:    "noreply@hms.local",
		To:      "x@example.com",
		Subject: "{{ .name",
		Body:    "ok",
	}
	if _, err := renderTemplate(tpl, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateTemplateFields(t *testing.T) {
	if err := validateTemplateFields("{{ .a }}", "plain", "{{ upper .b }}"); err != nil {
		t.Errorf("valid fields rejected: %v", err)
	}
	if err := validateTemplateFields("{{ .a }"); err == nil {
		t.Error("unbalanced expression accepted")
	}
}
