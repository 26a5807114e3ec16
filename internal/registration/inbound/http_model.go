package inbound

import "time"

type CheckFieldRequest struct {
	Value string `json:"value"`
	Today string `json:"today,omitempty"`
}

type CheckFieldResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type FormRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Today       string `json:"today,omitempty"`
}

type CheckFormResponse struct {
	Valid    bool              `json:"valid"`
	Messages map[string]string `json:"messages"`
	Errors   map[string]string `json:"errors"`
}

func (r CheckFormResponse) Message() string {
	if r.Valid {
		return "Form is valid"
	}
	return "Form has invalid fields"
}

type SubmitFormResponse struct {
	Name        string    `json:"name"`
	DateOfBirth string    `json:"date_of_birth"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	ReceivedAt  time.Time `json:"received_at"`
}

func (SubmitFormResponse) Message() string {
	return "Registration accepted"
}
