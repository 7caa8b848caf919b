package models

import (
	"time"
)

// Treatment statuses.
const (
	TreatmentActive    = "active"
	TreatmentCompleted = "completed"
	TreatmentOnHold    = "on-hold"
)

// Payment statuses. "overdue" and "pending" are only ever set at creation
// or by an explicit update; recording a payment moves the status to
// "current" or "completed" and never back.
const (
	PaymentPending   = "pending"
	PaymentCurrent   = "current"
	PaymentOverdue   = "overdue"
	PaymentCompleted = "completed"
)

// Treatment plan step statuses.
const (
	StepScheduled = "scheduled"
	StepCompleted = "completed"
	StepCancelled = "cancelled"
)

// Medical image types.
const (
	ImageXRay      = "x-ray"
	ImageIntraoral = "intraoral"
	ImageExtraoral = "extraoral"
	ImageProgress  = "progress"
	ImageBefore    = "before"
	ImageAfter     = "after"
	ImageOther     = "other"
)

// Activity actions appended by the domain operations.
const (
	ActionPatientCreated       = "patient_created"
	ActionPatientUpdated       = "patient_updated"
	ActionTreatmentPlanCreated = "treatment_plan_created"
	ActionTreatmentPlanUpdated = "treatment_plan_updated"
	ActionPaymentRecorded      = "payment_recorded"
	ActionImageUploaded        = "image_uploaded"
	ActionImageDeleted         = "image_deleted"
	ActionConsultantAdded      = "consultant_added"
)

// Patient belongs to exactly one consultant relationship and one clinic.
// PatientID is the human-readable sequential identifier ("00001", ...).
type Patient struct {
	ID                 string     `json:"id"`
	PatientID          string     `json:"patient_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	ConsultantID       string     `json:"consultant_id"`
	ClinicID           string     `json:"clinic_id"`
	ChiefComplaint     string     `json:"chief_complaint,omitempty"`
	TreatmentType      string     `json:"treatment_type"`
	TreatmentStatus    string     `json:"treatment_status"`
	ProgressPercentage int        `json:"progress_percentage"`
	TotalCost          float64    `json:"total_cost"`
	AmountPaid         float64    `json:"amount_paid"`
	PaymentStatus      string     `json:"payment_status"`
	NextAppointment    *time.Time `json:"next_appointment,omitempty"`
	ClinicalNotes      string     `json:"clinical_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TreatmentPlan is one ordered step of a patient's overall treatment.
// StepNumber is for display ordering only; it is not required to be
// unique or contiguous.
type TreatmentPlan struct {
	ID              string     `json:"id"`
	PatientID       string     `json:"patient_id"`
	StepNumber      int        `json:"step_number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ScheduledDate   *time.Time `json:"scheduled_date,omitempty"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	Cost            float64    `json:"cost"`
	Status          string     `json:"status"`
	PaymentRequired bool       `json:"payment_required"`
	CreatedAt       time.Time  `json:"created_at"`
}

// MedicalImage tracks an uploaded file by storage reference only.
type MedicalImage struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	ImageType    string    `json:"image_type"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Payment is an append-only record of money received against a patient.
type Payment struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	TreatmentPlanID string    `json:"treatment_plan_id,omitempty"`
	Amount          float64   `json:"amount"`
	PaymentDate     time.Time `json:"payment_date"`
	PaymentMethod   string    `json:"payment_method"`
	Notes           string    `json:"notes,omitempty"`
	RecordedBy      string    `json:"recorded_by"`
}

// Activity is an append-only audit record. PatientID is empty for
// activities not tied to a patient.
type Activity struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	PatientID   string            `json:"patient_id,omitempty"`
	Action      string            `json:"action"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// PatientUpdate lists the patient fields an update operation may change.
// Identifiers and ownership (ID, PatientID, ConsultantID, ClinicID) cannot
// be reassigned through an update.
type PatientUpdate struct {
	Name               *string    `json:"name,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	ChiefComplaint     *string    `json:"chief_complaint,omitempty"`
	TreatmentType      *string    `json:"treatment_type,omitempty"`
	TreatmentStatus    *string    `json:"treatment_status,omitempty"`
	ProgressPercentage *int       `json:"progress_percentage,omitempty"`
	TotalCost          *float64   `json:"total_cost,omitempty"`
	PaymentStatus      *string    `json:"payment_status,omitempty"`
	NextAppointment    *time.Time `json:"next_appointment,omitempty"`
	ClinicalNotes      *string    `json:"clinical_notes,omitempty"`
}

// ChangedFields returns the names of the fields the update sets, for the
// audit metadata of patient_updated activities.
func (u PatientUpdate) ChangedFields() []string {
	var fields []string
	if u.Name != nil {
		fields = append(fields, "name")
	}
	if u.Email != nil {
		fields = append(fields, "email")
	}
	if u.Phone != nil {
		fields = append(fields, "phone")
	}
	if u.DateOfBirth != nil {
		fields = append(fields, "date_of_birth")
	}
	if u.ChiefComplaint != nil {
		fields = append(fields, "chief_complaint")
	}
	if u.TreatmentType != nil {
		fields = append(fields, "treatment_type")
	}
	if u.TreatmentStatus != nil {
		fields = append(fields, "treatment_status")
	}
	if u.ProgressPercentage != nil {
		fields = append(fields, "progress_percentage")
	}
	if u.TotalCost != nil {
		fields = append(fields, "total_cost")
	}
	if u.PaymentStatus != nil {
		fields = append(fields, "payment_status")
	}
	if u.NextAppointment != nil {
		fields = append(fields, "next_appointment")
	}
	if u.ClinicalNotes != nil {
		fields = append(fields, "clinical_notes")
	}
	return fields
}

// TreatmentPlanUpdate lists the mutable fields of a treatment plan step.
type TreatmentPlanUpdate struct {
	StepNumber      *int       `json:"step_number,omitempty"`
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ScheduledDate   *time.Time `json:"scheduled_date,omitempty"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	Cost            *float64   `json:"cost,omitempty"`
	Status          *string    `json:"status,omitempty"`
	PaymentRequired *bool      `json:"payment_required,omitempty"`
}
