package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

func TestAdapterTable_CoversEveryEntityType(t *testing.T) {
	for _, entityType := range domain.AllEntityTypes() {
		_, ok := adapterFor(entityType)
		assert.True(t, ok, "missing adapter for %q", entityType)
	}

	_, ok := adapterFor("invoice")
	assert.False(t, ok)
}

func TestAdapter_PatientProjection(t *testing.T) {
	registered := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	rec := domain.NewPatientRecord("pat-1", domain.Patient{
		Name:         "Maria Santos Silva",
		Email:        "maria@example.com",
		Phone:        "+55 11 91234-5678",
		DocumentID:   "123.456.789-00",
		HealthPlan:   "Unimed Premium",
		Status:       "active",
		RegisteredAt: registered,
	})
	adapter, ok := adapterFor(domain.EntityPatient)
	require.True(t, ok)

	assert.Equal(t, []string{
		"Maria Santos Silva", "maria@example.com", "+55 11 91234-5678", "123.456.789-00",
	}, adapter.fields(rec))

	title, subtitle, description := adapter.present(rec)
	assert.Equal(t, "Maria Santos Silva", title)
	assert.Equal(t, "maria@example.com", subtitle)
	assert.Equal(t, "Unimed Premium", description)

	date, hasDate := adapter.date(rec)
	assert.True(t, hasDate)
	assert.True(t, date.Equal(registered))

	status, hasStatus := adapter.status(rec)
	assert.True(t, hasStatus)
	assert.Equal(t, "active", status)

	_, hasPriority := adapter.priority(rec)
	assert.False(t, hasPriority)
}

func TestAdapter_AppointmentTitleIsType(t *testing.T) {
	rec := domain.NewAppointmentRecord("apt-1", domain.Appointment{
		PatientName: "Maria Santos Silva",
		DoctorName:  "Dra. Carla Silva",
		Type:        "Cardiologia",
		Priority:    "urgent",
		ScheduledAt: time.Date(2026, 8, 4, 10, 0, 0, 0, time.UTC),
	})
	adapter, ok := adapterFor(domain.EntityAppointment)
	require.True(t, ok)

	title, subtitle, _ := adapter.present(rec)
	assert.Equal(t, "Cardiologia", title)
	assert.Equal(t, "Maria Santos Silva", subtitle)

	priority, hasPriority := adapter.priority(rec)
	assert.True(t, hasPriority)
	assert.Equal(t, "urgent", priority)
}

func TestAdapter_DatelessVariants(t *testing.T) {
	dateless := []domain.Record{
		domain.NewDoctorRecord("doc-1", domain.Doctor{Name: "Dra. Carla"}),
		domain.NewProcedureRecord("proc-1", domain.Procedure{Name: "Raio-X"}),
		domain.NewHealthPlanRecord("hp-1", domain.HealthPlan{Name: "Unimed"}),
	}
	for _, rec := range dateless {
		adapter, ok := adapterFor(rec.Type)
		require.True(t, ok)
		_, hasDate := adapter.date(rec)
		assert.False(t, hasDate, "%q should have no date field", rec.Type)
	}
}

func TestAdapter_ZeroTimeMeansNoDate(t *testing.T) {
	rec := domain.NewPatientRecord("pat-1", domain.Patient{Name: "Maria"})
	adapter, ok := adapterFor(domain.EntityPatient)
	require.True(t, ok)

	_, hasDate := adapter.date(rec)
	assert.False(t, hasDate)
}
