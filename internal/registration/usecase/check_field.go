package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/formcheck/internal/pkg/goerror"
	"github.com/shandysiswandi/formcheck/internal/registration/entity"
)

type CheckFieldInput struct {
	Field entity.Field
	Value string
	Today string
}

type CheckFieldOutput struct {
	Field   entity.Field
	Message string
	Valid   bool
}

func (s *Usecase) CheckField(ctx context.Context, in CheckFieldInput) (*CheckFieldOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckField")
	defer span.End()

	if in.Field.IsUnknown() {
		slog.WarnContext(ctx, "form field is unknown", "error", entity.ErrFieldUnknown)
		return nil, goerror.NewInvalidFormat("Unknown form field")
	}

	msg := checkField(in.Field, in.Value, s.today(in.Today))

	return &CheckFieldOutput{
		Field:   in.Field,
		Message: msg,
		Valid:   msg == "",
	}, nil
}
