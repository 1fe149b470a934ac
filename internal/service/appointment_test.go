package service

import (
	"testing"

	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
)

func TestValidStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{model.AppointmentScheduled, model.AppointmentInProgress, true},
		{model.AppointmentScheduled, model.AppointmentCancelled, true},
		{model.AppointmentInProgress, model.AppointmentCompleted, true},
		{model.AppointmentInProgress, model.AppointmentCancelled, true},
		{model.AppointmentScheduled, model.AppointmentCompleted, false},
		{model.AppointmentCompleted, model.AppointmentInProgress, false},
		{model.AppointmentCancelled, model.AppointmentScheduled, false},
		{model.AppointmentScheduled, model.AppointmentScheduled, true},
	}

	for _, tc := range cases {
		err := validStatusTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("%s -> %s: expected rejection", tc.from, tc.to)
				continue
			}
			domain := apperrors.GetDomainError(err)
			if domain == nil || domain.Code != "INVALID_INPUT" {
				t.Errorf("%s -> %s: err = %v, want INVALID_INPUT", tc.from, tc.to, err)
			}
		}
	}
}
