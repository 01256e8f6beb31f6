// Package cli owns every interactive concern: menu rendering, prompting
// and the yes/no confirmation gates. The domain services it calls never
// touch the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dentcare/dentcare/internal/domain/billing"
	"github.com/dentcare/dentcare/internal/domain/identity"
	"github.com/dentcare/dentcare/internal/domain/medication"
	"github.com/dentcare/dentcare/internal/domain/patient"
	"github.com/dentcare/dentcare/internal/domain/practitioner"
	"github.com/dentcare/dentcare/internal/domain/scheduling"
)

type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger

	users         *identity.Service
	sessions      *identity.SessionManager
	patients      *patient.Service
	practitioners *practitioner.Service
	scheduling    *scheduling.Service
	medication    *medication.Service
	billing       *billing.Service
}

type Deps struct {
	Users         *identity.Service
	Sessions      *identity.SessionManager
	Patients      *patient.Service
	Practitioners *practitioner.Service
	Scheduling    *scheduling.Service
	Medication    *medication.Service
	Billing       *billing.Service
}

func New(in io.Reader, out io.Writer, logger zerolog.Logger, deps Deps) *Menu {
	return &Menu{
		in:            bufio.NewReader(in),
		out:           out,
		logger:        logger,
		users:         deps.Users,
		sessions:      deps.Sessions,
		patients:      deps.Patients,
		practitioners: deps.Practitioners,
		scheduling:    deps.Scheduling,
		medication:    deps.Medication,
		billing:       deps.Billing,
	}
}

// Run drives the main menu loop until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to the dental clinic management console.")
	for {
		fmt.Fprintln(m.out, "\n--- Main Menu ---")
		fmt.Fprintln(m.out, "1. Register user")
		fmt.Fprintln(m.out, "2. Log in")
		fmt.Fprintln(m.out, "3. Edit user")
		fmt.Fprintln(m.out, "4. Deactivate user")
		fmt.Fprintln(m.out, "5. Log out")
		fmt.Fprintln(m.out, "6. Patients")
		fmt.Fprintln(m.out, "7. Doctors and schedules")
		fmt.Fprintln(m.out, "8. Appointments")
		fmt.Fprintln(m.out, "9. Prescriptions")
		fmt.Fprintln(m.out, "10. Billing")
		fmt.Fprintln(m.out, "0. Exit")

		choice, err := m.prompt("Select an option: ")
		if err != nil {
			return nil
		}
		switch choice {
		case "1":
			m.registerUser(ctx)
		case "2":
			m.login(ctx)
		case "3":
			m.editUser(ctx)
		case "4":
			m.disableUser(ctx)
		case "5":
			m.logout()
		case "6":
			m.patientMenu(ctx)
		case "7":
			m.practitionerMenu(ctx)
		case "8":
			m.appointmentMenu(ctx)
		case "9":
			m.prescriptionMenu(ctx)
		case "10":
			m.billingMenu(ctx)
		case "0":
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option, please try again.")
		}
	}
}

// -- prompt helpers --

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", raw)
	}
	return n, nil
}

func (m *Menu) promptList(label string) ([]string, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}

func (m *Menu) confirm(label string) bool {
	answer, err := m.prompt(label + " (y/n): ")
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (m *Menu) fail(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

// -- user flows --

func (m *Menu) registerUser(ctx context.Context) {
	u := &identity.User{}
	var err error
	if u.Name, err = m.prompt("Name: "); err != nil {
		return
	}
	if u.BadgeNumber, err = m.promptInt("Badge number: "); err != nil {
		m.fail(err)
		return
	}
	if u.Email, err = m.prompt("Email: "); err != nil {
		return
	}
	if u.Password, err = m.prompt("Password: "); err != nil {
		return
	}
	if u.Role, err = m.prompt("Role: "); err != nil {
		return
	}
	if err := m.users.Register(ctx, u); err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "User registered with id %d.\n", u.ID)
}

func (m *Menu) login(ctx context.Context) {
	email, err := m.prompt("Email: ")
	if err != nil {
		return
	}
	password, err := m.prompt("Password: ")
	if err != nil {
		return
	}
	sess, err := m.sessions.Login(ctx, email, password)
	if errors.Is(err, identity.ErrAccountDisabled) {
		fmt.Fprintln(m.out, "This account is deactivated.")
		if !m.confirm("Reactivate it?") {
			fmt.Fprintln(m.out, "Login cancelled.")
			return
		}
		// Reactivation requires the credentials re-entered.
		email, err = m.prompt("Email: ")
		if err != nil {
			return
		}
		password, err = m.prompt("Password: ")
		if err != nil {
			return
		}
		sess, err = m.sessions.ReactivateAndLogin(ctx, email, password)
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.logger.Info().Str("session_id", sess.ID.String()).Str("email", sess.User.Email).Msg("session opened")
	fmt.Fprintf(m.out, "Welcome, %s!\n", sess.User.Name)
}

func (m *Menu) editUser(ctx context.Context) {
	email, err := m.prompt("Email: ")
	if err != nil {
		return
	}
	password, err := m.prompt("Password: ")
	if err != nil {
		return
	}
	fmt.Fprintln(m.out, "Editable fields: name, badge_number, email, password")
	field, err := m.prompt("Field: ")
	if err != nil {
		return
	}
	value, err := m.prompt("New value: ")
	if err != nil {
		return
	}
	if !m.confirm("Save changes?") {
		fmt.Fprintln(m.out, "No changes were made.")
		return
	}
	u, err := m.users.EditUser(ctx, email, password, field, value)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "User %d updated.\n", u.ID)
}

func (m *Menu) disableUser(ctx context.Context) {
	email, err := m.prompt("Email: ")
	if err != nil {
		return
	}
	password, err := m.prompt("Password: ")
	if err != nil {
		return
	}
	if !m.confirm("Deactivate this account?") {
		fmt.Fprintln(m.out, "No changes were made.")
		return
	}
	u, err := m.users.Disable(ctx, email, password)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Account %s deactivated.\n", u.Email)
}

func (m *Menu) logout() {
	if err := m.sessions.Logout(); err != nil {
		fmt.Fprintln(m.out, "There is no active session.")
		return
	}
	fmt.Fprintln(m.out, "Session closed.")
}

// -- patient flows --

func (m *Menu) patientMenu(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Patients ---")
	fmt.Fprintln(m.out, "1. Register patient")
	fmt.Fprintln(m.out, "2. List patients")
	choice, err := m.prompt("Select an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		p := &patient.Patient{}
		if p.Name, err = m.prompt("Name: "); err != nil {
			return
		}
		if p.BirthDate, err = m.prompt("Birth date (YYYY-MM-DD): "); err != nil {
			return
		}
		if p.Address, err = m.prompt("Address: "); err != nil {
			return
		}
		if p.Phone, err = m.prompt("Phone: "); err != nil {
			return
		}
		if p.Allergies, err = m.promptList("Allergies (comma separated): "); err != nil {
			return
		}
		if p.Medications, err = m.promptList("Current medications (comma separated): "); err != nil {
			return
		}
		if p.Conditions, err = m.promptList("Known conditions (comma separated): "); err != nil {
			return
		}
		if err := m.patients.Register(ctx, p); err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "Patient registered with id %d.\n", p.ID)
	case "2":
		patients, _ := m.patients.List(ctx)
		for _, p := range patients {
			fmt.Fprintf(m.out, "%d. %s (%s) %s\n", p.ID, p.Name, p.BirthDate, p.Phone)
		}
	}
}

// -- practitioner flows --

func (m *Menu) practitionerMenu(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Doctors ---")
	fmt.Fprintln(m.out, "1. Register doctor")
	fmt.Fprintln(m.out, "2. List doctors")
	fmt.Fprintln(m.out, "3. Add schedule")
	fmt.Fprintln(m.out, "4. List schedules for a doctor")
	choice, err := m.prompt("Select an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		p := &practitioner.Practitioner{}
		if p.Name, err = m.prompt("Name: "); err != nil {
			return
		}
		if p.Specialty, err = m.prompt("Specialty: "); err != nil {
			return
		}
		if err := m.practitioners.Register(ctx, p); err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "Doctor registered with id %d.\n", p.ID)
	case "2":
		practitioners, _ := m.practitioners.List(ctx)
		for _, p := range practitioners {
			fmt.Fprintf(m.out, "%d. %s (%s)\n", p.ID, p.Name, p.Specialty)
		}
	case "3":
		sched := &scheduling.Schedule{}
		if sched.PractitionerID, err = m.promptInt("Doctor id: "); err != nil {
			m.fail(err)
			return
		}
		if sched.DayOfWeek, err = m.prompt("Day of week: "); err != nil {
			return
		}
		if sched.StartTime, err = m.prompt("Start time (HH:MM): "); err != nil {
			return
		}
		if sched.EndTime, err = m.prompt("End time (HH:MM): "); err != nil {
			return
		}
		if err := m.scheduling.CreateSchedule(ctx, sched); err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "Schedule registered with id %d.\n", sched.ID)
	case "4":
		id, err := m.promptInt("Doctor id: ")
		if err != nil {
			m.fail(err)
			return
		}
		scheds, _ := m.scheduling.ListSchedulesByPractitioner(ctx, id)
		for _, s := range scheds {
			fmt.Fprintf(m.out, "%d. %s %s-%s\n", s.ID, s.DayOfWeek, s.StartTime, s.EndTime)
		}
	}
}

// -- appointment flows --

func (m *Menu) appointmentMenu(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Appointments ---")
	fmt.Fprintln(m.out, "1. Book appointment")
	fmt.Fprintln(m.out, "2. List appointments for a patient")
	fmt.Fprintln(m.out, "3. Appointment details")
	choice, err := m.prompt("Select an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		a := &scheduling.Appointment{}
		if a.PatientID, err = m.promptInt("Patient id: "); err != nil {
			m.fail(err)
			return
		}
		if a.PractitionerID, err = m.promptInt("Doctor id: "); err != nil {
			m.fail(err)
			return
		}
		if a.Date, err = m.prompt("Date (YYYY-MM-DD): "); err != nil {
			return
		}
		if a.Time, err = m.prompt("Time (HH:MM): "); err != nil {
			return
		}
		if a.ServiceName, err = m.prompt("Service: "); err != nil {
			return
		}
		if err := m.scheduling.VerifyAppointmentRefs(ctx, a); err != nil {
			// The write itself does not require valid references; warn
			// the operator and let them decide.
			fmt.Fprintf(m.out, "Warning: %v\n", err)
			if !m.confirm("Book anyway?") {
				return
			}
		}
		if err := m.scheduling.CreateAppointment(ctx, a); err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "Appointment booked with id %d.\n", a.ID)
	case "2":
		id, err := m.promptInt("Patient id: ")
		if err != nil {
			m.fail(err)
			return
		}
		appts, _ := m.scheduling.ListAppointmentsByPatient(ctx, id)
		for _, a := range appts {
			fmt.Fprintf(m.out, "%d. %s %s — %s (doctor %d)\n", a.ID, a.Date, a.Time, a.ServiceName, a.PractitionerID)
		}
	case "3":
		id, err := m.promptInt("Appointment id: ")
		if err != nil {
			m.fail(err)
			return
		}
		detail, err := m.scheduling.ResolveAppointment(ctx, id)
		if err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "%s %s — %s\n", detail.Appointment.Date, detail.Appointment.Time, detail.Appointment.ServiceName)
		fmt.Fprintf(m.out, "Patient: %s (%s)\n", detail.Patient.Name, detail.Patient.Phone)
		fmt.Fprintf(m.out, "Doctor: %s (%s)\n", detail.Practitioner.Name, detail.Practitioner.Specialty)
	}
}

// -- prescription flows --

func (m *Menu) prescriptionMenu(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Prescriptions ---")
	fmt.Fprintln(m.out, "1. Issue prescription")
	fmt.Fprintln(m.out, "2. Patient history")
	choice, err := m.prompt("Select an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		p := &medication.Prescription{}
		if p.PatientID, err = m.promptInt("Patient id: "); err != nil {
			m.fail(err)
			return
		}
		if p.PractitionerID, err = m.promptInt("Doctor id: "); err != nil {
			m.fail(err)
			return
		}
		if p.Medication, err = m.prompt("Medication: "); err != nil {
			return
		}
		if p.Dosage, err = m.prompt("Dosage: "); err != nil {
			return
		}
		if p.Frequency, err = m.prompt("Frequency: "); err != nil {
			return
		}
		if p.Duration, err = m.prompt("Duration: "); err != nil {
			return
		}
		if p.IssuedOn, err = m.prompt("Issue date (YYYY-MM-DD): "); err != nil {
			return
		}
		if _, err := m.medication.Prescribe(ctx, p); err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintln(m.out, "Prescription recorded.")
	case "2":
		id, err := m.promptInt("Patient id: ")
		if err != nil {
			m.fail(err)
			return
		}
		h, err := m.medication.HistoryFor(ctx, id)
		if err != nil {
			fmt.Fprintln(m.out, "This patient has no prescriptions.")
			return
		}
		for _, p := range h.Prescriptions {
			fmt.Fprintf(m.out, "%s: %s %s, %s for %s\n", p.IssuedOn, p.Medication, p.Dosage, p.Frequency, p.Duration)
		}
	}
}

// -- billing flows --

func (m *Menu) billingMenu(ctx context.Context) {
	fmt.Fprintln(m.out, "\n--- Billing ---")
	fmt.Fprintln(m.out, "1. Register product or service")
	fmt.Fprintln(m.out, "2. List catalog")
	fmt.Fprintln(m.out, "3. Generate invoice for an appointment")
	fmt.Fprintln(m.out, "4. List invoices")
	choice, err := m.prompt("Select an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		item := &billing.ProductOrService{}
		if item.Name, err = m.prompt("Name: "); err != nil {
			return
		}
		kind, err := m.prompt("Kind (product/service): ")
		if err != nil {
			return
		}
		item.Kind = billing.Kind(kind)
		raw, err := m.prompt("Price: ")
		if err != nil {
			return
		}
		if item.Price, err = strconv.ParseFloat(raw, 64); err != nil {
			m.fail(fmt.Errorf("expected a price, got %q", raw))
			return
		}
		if err := m.billing.RegisterItem(ctx, item); err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "Catalog entry registered with id %d.\n", item.ID)
	case "2":
		items, _ := m.billing.ListCatalog(ctx)
		for _, item := range items {
			fmt.Fprintf(m.out, "%d. %s (%s) %.2f\n", item.ID, item.Name, item.Kind, item.Price)
		}
	case "3":
		id, err := m.promptInt("Appointment id: ")
		if err != nil {
			m.fail(err)
			return
		}
		products, err := m.promptList("Products used (comma separated): ")
		if err != nil {
			return
		}
		inv, err := m.billing.GenerateForAppointment(ctx, id, products)
		if err != nil {
			m.fail(err)
			return
		}
		fmt.Fprintf(m.out, "Invoice %d generated, total %.2f.\n", inv.ID, inv.Total)
	case "4":
		invoices, _ := m.billing.ListInvoices(ctx)
		for _, inv := range invoices {
			fmt.Fprintf(m.out, "%d. appointment %d, total %.2f\n", inv.ID, inv.AppointmentID, inv.Total)
		}
	}
}
