package services

import (
	"time"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

// entityAdapter maps one record variant onto the common search shape.
// Adapters are side-effect-free and registered in a fixed table keyed by
// entity type; the table is the single dispatch point, so nothing outside
// this file branches on entity type.
type entityAdapter struct {
	// fields returns the values eligible for matching. Empty entries are
	// allowed and skipped by the scorer.
	fields func(domain.Record) []string

	// present builds the human-readable projection of a record.
	present func(domain.Record) (title, subtitle, description string)

	// date returns the variant's date field, if it has one. Variants
	// without a date sort last under date ordering and are dropped by
	// date-range filters.
	date func(domain.Record) (time.Time, bool)

	// status returns the variant's status attribute, if it has one.
	status func(domain.Record) (string, bool)

	// priority returns the variant's priority attribute, if it has one.
	priority func(domain.Record) (string, bool)
}

func noDate(domain.Record) (time.Time, bool) { return time.Time{}, false }

func noAttribute(domain.Record) (string, bool) { return "", false }

// adapterTable holds one adapter per entity type. Adding an entity type
// means adding a variant, an adapter entry, and nothing else.
var adapterTable = map[domain.EntityType]entityAdapter{
	domain.EntityPatient: {
		fields: func(r domain.Record) []string {
			p := r.Patient
			return []string{p.Name, p.Email, p.Phone, p.DocumentID}
		},
		present: func(r domain.Record) (string, string, string) {
			p := r.Patient
			return p.Name, p.Email, p.HealthPlan
		},
		date: func(r domain.Record) (time.Time, bool) {
			return r.Patient.RegisteredAt, !r.Patient.RegisteredAt.IsZero()
		},
		status:   func(r domain.Record) (string, bool) { return r.Patient.Status, true },
		priority: noAttribute,
	},

	domain.EntityAppointment: {
		fields: func(r domain.Record) []string {
			a := r.Appointment
			return []string{a.PatientName, a.DoctorName, a.Type, a.Notes}
		},
		present: func(r domain.Record) (string, string, string) {
			a := r.Appointment
			return a.Type, a.PatientName, a.DoctorName
		},
		date: func(r domain.Record) (time.Time, bool) {
			return r.Appointment.ScheduledAt, !r.Appointment.ScheduledAt.IsZero()
		},
		status:   func(r domain.Record) (string, bool) { return r.Appointment.Status, true },
		priority: func(r domain.Record) (string, bool) { return r.Appointment.Priority, true },
	},

	domain.EntityDoctor: {
		fields: func(r domain.Record) []string {
			d := r.Doctor
			return []string{d.Name, d.Specialty, d.CRM, d.Email}
		},
		present: func(r domain.Record) (string, string, string) {
			d := r.Doctor
			return d.Name, d.Specialty, d.CRM
		},
		date:     noDate,
		status:   func(r domain.Record) (string, bool) { return r.Doctor.Status, true },
		priority: noAttribute,
	},

	domain.EntityProcedure: {
		fields: func(r domain.Record) []string {
			p := r.Procedure
			return []string{p.Name, p.Category, p.Description}
		},
		present: func(r domain.Record) (string, string, string) {
			p := r.Procedure
			return p.Name, p.Category, p.Description
		},
		date:     noDate,
		status:   noAttribute,
		priority: noAttribute,
	},

	domain.EntityDocument: {
		fields: func(r domain.Record) []string {
			d := r.Document
			return []string{d.Name, d.PatientName, d.Category, d.DoctorName}
		},
		present: func(r domain.Record) (string, string, string) {
			d := r.Document
			return d.Name, d.PatientName, d.Category
		},
		date: func(r domain.Record) (time.Time, bool) {
			return r.Document.UploadedAt, !r.Document.UploadedAt.IsZero()
		},
		status:   func(r domain.Record) (string, bool) { return r.Document.Status, true },
		priority: noAttribute,
	},

	domain.EntityHealthPlan: {
		fields: func(r domain.Record) []string {
			h := r.HealthPlan
			return []string{h.Name, h.Provider, h.PlanType}
		},
		present: func(r domain.Record) (string, string, string) {
			h := r.HealthPlan
			return h.Name, h.Provider, h.PlanType
		},
		date:     noDate,
		status:   func(r domain.Record) (string, bool) { return r.HealthPlan.Status, true },
		priority: noAttribute,
	},
}

// adapterFor returns the adapter for an entity type. Unknown types return
// false; the planner silently contributes zero records for them.
func adapterFor(t domain.EntityType) (entityAdapter, bool) {
	a, ok := adapterTable[t]
	return a, ok
}
