package models

// Read-optimized composite views assembled by the services. These hold no
// state of their own; every field is looked up at request time.

// EnrichedPatient is a patient annotated with its consultant's user record
// and its clinic's user record. Either may be absent if the referenced
// user no longer resolves.
type EnrichedPatient struct {
	Patient
	Consultant *User `json:"consultant,omitempty"`
	Clinic     *User `json:"clinic,omitempty"`
}

// PatientDetail is a single patient with its full treatment history:
// plan steps ascending by step number, images and payments most
// recent first.
type PatientDetail struct {
	Patient
	TreatmentPlans []TreatmentPlan `json:"treatment_plans"`
	MedicalImages  []MedicalImage  `json:"medical_images"`
	Payments       []Payment       `json:"payments"`
}

// ConsultantWithStats is a consultant relationship annotated with the
// consultant's user record and the number of patients assigned to it.
type ConsultantWithStats struct {
	Consultant
	User         *User `json:"user,omitempty"`
	PatientCount int   `json:"patient_count"`
}

// DashboardStats is the role-dependent aggregate for the dashboard.
type DashboardStats struct {
	ActivePatients int     `json:"active_patients"`
	Consultants    int     `json:"consultants"`
	Appointments   int     `json:"appointments"`
	Revenue        float64 `json:"revenue"`
}
