package entity

import "time"

// Registration is a form that passed every field rule.
type Registration struct {
	Name        string
	DateOfBirth string
	Email       string
	PhoneNumber string
	ReceivedAt  time.Time
}
