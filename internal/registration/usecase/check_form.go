package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formcheck/internal/registration/entity"
)

type CheckFormInput struct {
	Name        string
	DateOfBirth string
	Email       string
	PhoneNumber string
	Today       string
}

type CheckFormOutput struct {
	// Messages has one entry per form field, empty when the field is valid.
	Messages map[string]string
	// Errors keeps only the failing fields.
	Errors map[string]string
	Valid  bool
}

func (s *Usecase) CheckForm(ctx context.Context, in CheckFormInput) (*CheckFormOutput, error) {
	_, span := s.startSpan(ctx, "CheckForm")
	defer span.End()

	today := s.today(in.Today)
	values := map[entity.Field]string{
		entity.FieldName:        in.Name,
		entity.FieldDateOfBirth: in.DateOfBirth,
		entity.FieldEmail:       in.Email,
		entity.FieldPhoneNumber: in.PhoneNumber,
	}

	messages := lo.SliceToMap(entity.Fields(), func(f entity.Field) (string, string) {
		return f.String(), checkField(f, values[f], today)
	})
	errs := lo.OmitByValues(messages, []string{""})

	return &CheckFormOutput{
		Messages: messages,
		Errors:   errs,
		Valid:    len(errs) == 0,
	}, nil
}
