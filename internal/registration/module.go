package registration

import (
	"errors"

	"github.com/shandysiswandi/formcheck/internal/pkg/clock"
	"github.com/shandysiswandi/formcheck/internal/pkg/instrument"
	"github.com/shandysiswandi/formcheck/internal/pkg/router"
	"github.com/shandysiswandi/formcheck/internal/pkg/validator"
	"github.com/shandysiswandi/formcheck/internal/registration/inbound"
	"github.com/shandysiswandi/formcheck/internal/registration/usecase"
)

// ErrValidatorRequired is returned when the module is built without a validator.
var ErrValidatorRequired = errors.New("registration: validator is required")

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if dep.Validator == nil {
		return ErrValidatorRequired
	}

	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Validator:  dep.Validator,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
