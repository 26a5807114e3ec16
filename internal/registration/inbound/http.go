package inbound

import (
	"context"

	"github.com/shandysiswandi/formcheck/internal/pkg/router"
	"github.com/shandysiswandi/formcheck/internal/registration/usecase"
)

type uc interface {
	CheckField(ctx context.Context, in usecase.CheckFieldInput) (*usecase.CheckFieldOutput, error)
	CheckForm(ctx context.Context, in usecase.CheckFormInput) (*usecase.CheckFormOutput, error)
	SubmitForm(ctx context.Context, in usecase.SubmitFormInput) (*usecase.SubmitFormOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/registration/fields/:field/check", end.CheckField)
	r.POST("/api/v1/registration/check", end.CheckForm)
	r.POST("/api/v1/registration/submit", end.SubmitForm)
}
