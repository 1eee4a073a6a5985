// Package seed builds a realistic demo dataset for the clinicsearch
// engine: patients, appointments, doctors, procedures, documents and
// health plans as a small Brazilian clinic would hold them.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
)

func day(offset int) time.Time {
	return time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

// Records returns the demo dataset. IDs are freshly generated on each
// call, so seeding twice produces distinct records.
func Records() []domain.Record {
	var recs []domain.Record

	patients := []domain.Patient{
		{Name: "Maria Santos Silva", Email: "maria.santos@example.com", Phone: "(11) 98765-4321", DocumentID: "123.456.789-00", HealthPlan: "Unimed Nacional", Status: "active", RegisteredAt: day(-120)},
		{Name: "João Pedro Oliveira", Email: "joao.oliveira@example.com", Phone: "(11) 91234-5678", DocumentID: "987.654.321-00", HealthPlan: "Bradesco Saúde Top", Status: "active", RegisteredAt: day(-300)},
		{Name: "Ana Beatriz Costa", Email: "ana.costa@example.com", Phone: "(21) 99876-5432", DocumentID: "456.789.123-00", HealthPlan: "SulAmérica Clássico", Status: "active", RegisteredAt: day(-45)},
		{Name: "Carlos Eduardo Lima", Email: "carlos.lima@example.com", Phone: "(31) 98888-7777", DocumentID: "321.654.987-00", HealthPlan: "Unimed Nacional", Status: "inactive", RegisteredAt: day(-500)},
		{Name: "Fernanda Almeida Rocha", Email: "fernanda.rocha@example.com", Phone: "(41) 97777-6666", DocumentID: "654.321.987-00", HealthPlan: "Amil 400", Status: "active", RegisteredAt: day(-10)},
	}
	for _, p := range patients {
		recs = append(recs, domain.NewPatientRecord(uuid.NewString(), p))
	}

	doctors := []domain.Doctor{
		{Name: "Dr. Roberto Mendes", Specialty: "Cardiologia", CRM: "CRM/SP 123456", Email: "roberto.mendes@clinica.com", Status: "active"},
		{Name: "Dra. Patricia Souza", Specialty: "Dermatologia", CRM: "CRM/SP 234567", Email: "patricia.souza@clinica.com", Status: "active"},
		{Name: "Dr. André Carvalho", Specialty: "Ortopedia", CRM: "CRM/RJ 345678", Email: "andre.carvalho@clinica.com", Status: "on_leave"},
		{Name: "Dra. Juliana Freitas", Specialty: "Pediatria", CRM: "CRM/MG 456789", Email: "juliana.freitas@clinica.com", Status: "active"},
	}
	for _, d := range doctors {
		recs = append(recs, domain.NewDoctorRecord(uuid.NewString(), d))
	}

	appointments := []domain.Appointment{
		{PatientName: "Maria Santos Silva", DoctorName: "Dr. Roberto Mendes", Type: "Cardiologia", Notes: "Retorno para avaliação do eletrocardiograma", Status: "scheduled", Priority: "normal", ScheduledAt: day(3)},
		{PatientName: "João Pedro Oliveira", DoctorName: "Dra. Patricia Souza", Type: "Dermatologia", Notes: "Primeira consulta", Status: "scheduled", Priority: "normal", ScheduledAt: day(1)},
		{PatientName: "Ana Beatriz Costa", DoctorName: "Dr. Roberto Mendes", Type: "Cardiologia", Notes: "Dor no peito em esforço", Status: "scheduled", Priority: "urgent", ScheduledAt: day(0)},
		{PatientName: "Fernanda Almeida Rocha", DoctorName: "Dra. Juliana Freitas", Type: "Pediatria", Notes: "Consulta de rotina do bebê", Status: "completed", Priority: "normal", ScheduledAt: day(-7)},
		{PatientName: "Carlos Eduardo Lima", DoctorName: "Dr. André Carvalho", Type: "Ortopedia", Notes: "Dor lombar crónica", Status: "cancelled", Priority: "normal", ScheduledAt: day(-2)},
	}
	for _, a := range appointments {
		recs = append(recs, domain.NewAppointmentRecord(uuid.NewString(), a))
	}

	procedures := []domain.Procedure{
		{Name: "Eletrocardiograma", Category: "exams", Description: "Registro da atividade elétrica do coração", Duration: 20},
		{Name: "Hemograma Completo", Category: "exams", Description: "Análise completa das células do sangue", Duration: 10},
		{Name: "Consulta Cardiológica", Category: "consultation", Description: "Avaliação clínica com cardiologista", Duration: 40},
		{Name: "Pequena Cirurgia Dermatológica", Category: "surgery", Description: "Remoção de lesões de pele em ambulatório", Duration: 60},
	}
	for _, p := range procedures {
		recs = append(recs, domain.NewProcedureRecord(uuid.NewString(), p))
	}

	documents := []domain.Document{
		{Name: "Resultado Eletrocardiograma - Maria", PatientName: "Maria Santos Silva", DoctorName: "Dr. Roberto Mendes", Category: "exam_result", Status: "reviewed", UploadedAt: day(-5)},
		{Name: "Encaminhamento Ortopedia", PatientName: "Carlos Eduardo Lima", DoctorName: "Dr. André Carvalho", Category: "referral", Status: "pending", UploadedAt: day(-3)},
		{Name: "Hemograma Ana Beatriz", PatientName: "Ana Beatriz Costa", DoctorName: "", Category: "exam_result", Status: "pending", UploadedAt: day(-1)},
	}
	for _, d := range documents {
		recs = append(recs, domain.NewDocumentRecord(uuid.NewString(), d))
	}

	plans := []domain.HealthPlan{
		{Name: "Unimed Nacional", Provider: "Unimed", PlanType: "premium", Status: "active"},
		{Name: "Bradesco Saúde Top", Provider: "Bradesco Saúde", PlanType: "premium", Status: "active"},
		{Name: "SulAmérica Clássico", Provider: "SulAmérica", PlanType: "basic", Status: "active"},
		{Name: "Amil 400", Provider: "Amil", PlanType: "standard", Status: "suspended"},
	}
	for _, h := range plans {
		recs = append(recs, domain.NewHealthPlanRecord(uuid.NewString(), h))
	}

	return recs
}
