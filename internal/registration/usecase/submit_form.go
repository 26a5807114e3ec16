package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formcheck/internal/pkg/goerror"
	"github.com/shandysiswandi/formcheck/internal/pkg/validator"
	"github.com/shandysiswandi/formcheck/internal/registration/entity"
)

type SubmitFormInput struct {
	Name        string `json:"name" validate:"person_name"`
	DateOfBirth string `json:"date_of_birth" validate:"birth_date=Today"`
	Email       string `json:"email" validate:"contact_email"`
	PhoneNumber string `json:"phone_number" validate:"phone_number"`
	Today       string `json:"-"`
}

type SubmitFormOutput struct {
	Registration entity.Registration
}

func (s *Usecase) SubmitForm(ctx context.Context, in SubmitFormInput) (*SubmitFormOutput, error) {
	ctx, span := s.startSpan(ctx, "SubmitForm")
	defer span.End()

	in.Today = s.today(in.Today)

	if err := s.validator.Validate(in); err != nil {
		var verr validator.V10ValidationError
		if !errors.As(err, &verr) {
			slog.ErrorContext(ctx, "failed to validate registration form", "error", err)
			return nil, goerror.NewServer(err)
		}

		slog.InfoContext(ctx, "registration form rejected", "fields", lo.Keys(verr.Values()))
		return nil, goerror.NewInvalidInput(err)
	}

	return &SubmitFormOutput{
		Registration: entity.Registration{
			Name:        strings.TrimSpace(in.Name),
			DateOfBirth: in.DateOfBirth,
			Email:       strings.ToLower(in.Email),
			PhoneNumber: in.PhoneNumber,
			ReceivedAt:  s.clock.Now(),
		},
	}, nil
}
