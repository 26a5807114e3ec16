package inbound

import (
	"github.com/shandysiswandi/formcheck/internal/pkg/router"
	"github.com/shandysiswandi/formcheck/internal/registration/entity"
	"github.com/shandysiswandi/formcheck/internal/registration/usecase"
)

// HTTPEndpoint exposes HTTP handlers for checking and submitting the registration form.
type HTTPEndpoint struct {
	uc uc
}

// CheckField validates a single form field as the user types it.
// @Summary Check one field
// @Description Runs the rule for the field named in the path. An empty message means the value is valid.
// @Tags Registration
// @Accept json
// @Produce json
// @Param field path string true "Field name" Enums(name, date_of_birth, email, phone_number)
// @Param request body CheckFieldRequest true "Field value"
// @Success 200 {object} router.successResponse{data=CheckFieldResponse} "Field check result"
// @Failure 400 {object} router.errorResponse "Invalid request body or unknown field"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/registration/fields/{field}/check [post]
func (h *HTTPEndpoint) CheckField(r *router.Request) (any, error) {
	var req CheckFieldRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CheckField(r.Context(), usecase.CheckFieldInput{
		Field: entity.FieldFromString(r.GetParam("field")),
		Value: req.Value,
		Today: req.Today,
	})
	if err != nil {
		return nil, err
	}

	return CheckFieldResponse{
		Field:   resp.Field.String(),
		Valid:   resp.Valid,
		Message: resp.Message,
	}, nil
}

// CheckForm validates every field of the form and reports all messages at once.
// @Summary Check the whole form
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body FormRequest true "Registration form"
// @Success 200 {object} router.successResponse{data=CheckFormResponse} "Form check result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/registration/check [post]
func (h *HTTPEndpoint) CheckForm(r *router.Request) (any, error) {
	var req FormRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CheckForm(r.Context(), usecase.CheckFormInput{
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Today:       req.Today,
	})
	if err != nil {
		return nil, err
	}

	return CheckFormResponse{
		Valid:    resp.Valid,
		Messages: resp.Messages,
		Errors:   resp.Errors,
	}, nil
}

// SubmitForm accepts the form only when every field passes.
// @Summary Submit the form
// @Description Rejects the form with 422 and a field to message map when any rule fails.
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body FormRequest true "Registration form"
// @Success 200 {object} router.successResponse{data=SubmitFormResponse} "Accepted registration"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error" example:{"message":"Validation error","error":{"email":"Invalid email format."}}
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/registration/submit [post]
func (h *HTTPEndpoint) SubmitForm(r *router.Request) (any, error) {
	var req FormRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SubmitForm(r.Context(), usecase.SubmitFormInput{
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Today:       req.Today,
	})
	if err != nil {
		return nil, err
	}

	return SubmitFormResponse{
		Name:        resp.Registration.Name,
		DateOfBirth: resp.Registration.DateOfBirth,
		Email:       resp.Registration.Email,
		PhoneNumber: resp.Registration.PhoneNumber,
		ReceivedAt:  resp.Registration.ReceivedAt,
	}, nil
}
