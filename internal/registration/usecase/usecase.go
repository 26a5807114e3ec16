package usecase

import (
	"context"

	"github.com/shandysiswandi/formcheck/internal/pkg/clock"
	"github.com/shandysiswandi/formcheck/internal/pkg/instrument"
	"github.com/shandysiswandi/formcheck/internal/pkg/validator"
	"github.com/shandysiswandi/formcheck/internal/registration/entity"
	"go.opentelemetry.io/otel/trace"
)

type Usecase struct {
	validator validator.Validator
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	Validator  validator.Validator
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		validator: dep.Validator,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("registration.usecase").Start(ctx, name)
}

// today returns the caller's reference date, or the clock's date when none was given.
func (s *Usecase) today(in string) string {
	if in != "" {
		return in
	}
	return clock.Today(s.clock)
}

func checkField(f entity.Field, value, today string) string {
	switch f {
	case entity.FieldName:
		return validator.ValidateName(value)
	case entity.FieldDateOfBirth:
		return validator.ValidateDateOfBirth(value, today)
	case entity.FieldEmail:
		return validator.ValidateEmail(value)
	case entity.FieldPhoneNumber:
		return validator.ValidatePhoneNumber(value)
	default:
		return ""
	}
}
