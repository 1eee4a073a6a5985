package domain

import "time"

// EntityType identifies one of the fixed record categories the engine
// searches. The set is closed: adding a category means adding a new
// record variant and its adapter, never a runtime registration.
type EntityType string

const (
	// EntityPatient is a registered patient.
	EntityPatient EntityType = "patient"
	// EntityAppointment is a scheduled consultation or exam.
	EntityAppointment EntityType = "appointment"
	// EntityDoctor is a care provider.
	EntityDoctor EntityType = "doctor"
	// EntityProcedure is a billable medical procedure.
	EntityProcedure EntityType = "procedure"
	// EntityDocument is an uploaded clinical document.
	EntityDocument EntityType = "document"
	// EntityHealthPlan is an insurance coverage plan.
	EntityHealthPlan EntityType = "health_plan"
)

// AllEntityTypes returns every searchable entity type in presentation order.
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityPatient,
		EntityAppointment,
		EntityDoctor,
		EntityProcedure,
		EntityDocument,
		EntityHealthPlan,
	}
}

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityPatient, EntityAppointment, EntityDoctor,
		EntityProcedure, EntityDocument, EntityHealthPlan:
		return true
	}
	return false
}

// Patient is a registered patient record.
type Patient struct {
	// Name is the patient's full name.
	Name string

	// Email is the contact email address.
	Email string

	// Phone is the contact phone number.
	Phone string

	// DocumentID is the national identity document (CPF).
	DocumentID string

	// HealthPlan is the display name of the patient's coverage plan.
	HealthPlan string

	// Status is the registration status (e.g. "active", "inactive").
	Status string

	// RegisteredAt is when the patient was registered.
	RegisteredAt time.Time
}

// Appointment is a scheduled consultation or exam.
type Appointment struct {
	// PatientName is the display name of the patient.
	PatientName string

	// DoctorName is the display name of the attending doctor.
	DoctorName string

	// Type is the appointment category (e.g. "Cardiologia", "Retorno").
	Type string

	// Notes holds free-text notes entered at scheduling time.
	Notes string

	// Status is the scheduling status (e.g. "scheduled", "completed").
	Status string

	// Priority is the triage priority (e.g. "normal", "urgent").
	Priority string

	// ScheduledAt is the appointment date and time.
	ScheduledAt time.Time
}

// Doctor is a care provider record.
type Doctor struct {
	// Name is the doctor's full name.
	Name string

	// Specialty is the medical specialty.
	Specialty string

	// CRM is the regional medical council registration number.
	CRM string

	// Email is the contact email address.
	Email string

	// Status is the provider status (e.g. "active", "on_leave").
	Status string
}

// Procedure is a billable medical procedure.
type Procedure struct {
	// Name is the procedure name.
	Name string

	// Category groups related procedures (e.g. "exams", "surgery").
	Category string

	// Description explains what the procedure covers.
	Description string

	// Duration is the typical duration in minutes.
	Duration int
}

// Document is an uploaded clinical document.
type Document struct {
	// Name is the document file name or title.
	Name string

	// PatientName is the display name of the patient it belongs to.
	PatientName string

	// DoctorName is the display name of the requesting doctor, if any.
	DoctorName string

	// Category groups documents (e.g. "exam_result", "referral").
	Category string

	// Status is the review status (e.g. "pending", "reviewed").
	Status string

	// UploadedAt is when the document was uploaded.
	UploadedAt time.Time
}

// HealthPlan is an insurance coverage plan accepted by the clinic.
type HealthPlan struct {
	// Name is the plan's commercial name.
	Name string

	// Provider is the insurance company offering the plan.
	Provider string

	// PlanType is the coverage tier (e.g. "basic", "premium").
	PlanType string

	// Status is the acceptance status (e.g. "active", "suspended").
	Status string
}

// Record is a searchable clinic entity. It is a tagged union: Type selects
// which variant pointer is populated; exactly one is non-nil. The engine
// never mutates a Record, it only reads snapshots supplied by the record
// source.
type Record struct {
	// ID is the unique identifier within the record source.
	ID string

	// Type selects the populated variant below.
	Type EntityType

	Patient     *Patient
	Appointment *Appointment
	Doctor      *Doctor
	Procedure   *Procedure
	Document    *Document
	HealthPlan  *HealthPlan
}

// NewPatientRecord wraps a Patient in a Record.
func NewPatientRecord(id string, p Patient) Record {
	return Record{ID: id, Type: EntityPatient, Patient: &p}
}

// NewAppointmentRecord wraps an Appointment in a Record.
func NewAppointmentRecord(id string, a Appointment) Record {
	return Record{ID: id, Type: EntityAppointment, Appointment: &a}
}

// NewDoctorRecord wraps a Doctor in a Record.
func NewDoctorRecord(id string, d Doctor) Record {
	return Record{ID: id, Type: EntityDoctor, Doctor: &d}
}

// NewProcedureRecord wraps a Procedure in a Record.
func NewProcedureRecord(id string, p Procedure) Record {
	return Record{ID: id, Type: EntityProcedure, Procedure: &p}
}

// NewDocumentRecord wraps a Document in a Record.
func NewDocumentRecord(id string, d Document) Record {
	return Record{ID: id, Type: EntityDocument, Document: &d}
}

// NewHealthPlanRecord wraps a HealthPlan in a Record.
func NewHealthPlanRecord(id string, h HealthPlan) Record {
	return Record{ID: id, Type: EntityHealthPlan, HealthPlan: &h}
}
