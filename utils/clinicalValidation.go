package utils

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateNewPatient checks the caller-supplied fields of a patient
// record before it is created.
func ValidateNewPatient(name, consultantID string) error {
	return validation.Errors{
		"name":          validation.Validate(name, validation.Required.Error("patient name is required"), validation.Length(1, 200)),
		"consultant_id": validation.Validate(consultantID, validation.Required.Error("consultant_id is required")),
	}.Filter()
}

// ValidateNewTreatmentPlan checks a plan step before it is created.
func ValidateNewTreatmentPlan(title string, stepNumber int) error {
	return validation.Errors{
		"title":       validation.Validate(title, validation.Required.Error("title is required")),
		"step_number": validation.Validate(stepNumber, validation.Min(0)),
	}.Filter()
}

// ValidateNewPayment checks a payment before it is recorded.
func ValidateNewPayment(amount float64) error {
	return validation.Errors{
		"amount": validation.Validate(amount,
			validation.Required.Error("amount must be positive"),
			validation.Min(0.01).Error("amount must be positive")),
	}.Filter()
}
