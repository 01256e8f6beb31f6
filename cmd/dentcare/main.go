package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dentcare/dentcare/internal/cli"
	"github.com/dentcare/dentcare/internal/config"
	"github.com/dentcare/dentcare/internal/domain/billing"
	"github.com/dentcare/dentcare/internal/domain/identity"
	"github.com/dentcare/dentcare/internal/domain/medication"
	"github.com/dentcare/dentcare/internal/domain/patient"
	"github.com/dentcare/dentcare/internal/domain/practitioner"
	"github.com/dentcare/dentcare/internal/domain/scheduling"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dentcare",
		Short: "Dental clinic management console",
	}
	rootCmd.AddCommand(menuCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive clinic menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write a small demo dataset into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

type app struct {
	logger   zerolog.Logger
	cfg      *config.Config
	users    *identity.Service
	sessions *identity.SessionManager
	deps     cli.Deps
}

func buildApp() (*app, error) {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Repositories, one collection file each
	userRepo := identity.NewUserRepoFile(cfg.CollectionPath("users"), logger)
	patientRepo := patient.NewPatientRepoFile(cfg.CollectionPath("patients"), logger)
	practitionerRepo := practitioner.NewPractitionerRepoFile(cfg.CollectionPath("doctors"), logger)
	scheduleRepo := scheduling.NewScheduleRepoFile(cfg.CollectionPath("schedules"), logger)
	appointmentRepo := scheduling.NewAppointmentRepoFile(cfg.CollectionPath("appointments"), logger)
	historyRepo := medication.NewHistoryRepoFile(cfg.CollectionPath("history"), logger)
	catalogRepo := billing.NewCatalogRepoFile(cfg.CollectionPath("products_services"), logger)
	invoiceRepo := billing.NewInvoiceRepoFile(cfg.CollectionPath("invoices"), logger)

	// Services
	users := identity.NewService(userRepo)
	sessions := identity.NewSessionManager(userRepo)
	patients := patient.NewService(patientRepo)
	practitioners := practitioner.NewService(practitionerRepo)
	scheduler := scheduling.NewService(scheduleRepo, appointmentRepo, patientRepo, practitionerRepo)
	prescriber := medication.NewService(historyRepo, cfg.LegacyPrescriptionIDs)
	biller := billing.NewService(catalogRepo, invoiceRepo, appointmentRepo)

	return &app{
		logger:   logger,
		cfg:      cfg,
		users:    users,
		sessions: sessions,
		deps: cli.Deps{
			Users:         users,
			Sessions:      sessions,
			Patients:      patients,
			Practitioners: practitioners,
			Scheduling:    scheduler,
			Medication:    prescriber,
			Billing:       biller,
		},
	}, nil
}

func runMenu() error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	a.logger.Info().Str("data_dir", a.cfg.DataDir).Msg("starting clinic console")
	menu := cli.New(os.Stdin, os.Stdout, a.logger, a.deps)
	return menu.Run(context.Background())
}

func runSeed() error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := a.users.Register(ctx, &identity.User{
		Name: "Admin", BadgeNumber: 1000, Email: "admin@clinic.local",
		Password: "admin", Role: "administrator",
	}); err != nil {
		return err
	}
	if err := a.deps.Practitioners.Register(ctx, &practitioner.Practitioner{
		Name: "Dr. Rivas", Specialty: "orthodontics",
	}); err != nil {
		return err
	}
	if err := a.deps.Patients.Register(ctx, &patient.Patient{
		Name: "Luis Gomez", BirthDate: "1988-04-12",
		Address: "Av. Central 42", Phone: "555-0101",
	}); err != nil {
		return err
	}
	for _, item := range []*billing.ProductOrService{
		{Name: "cleaning", Kind: billing.KindService, Price: 150},
		{Name: "filling", Kind: billing.KindService, Price: 220},
		{Name: "fluoride gel", Kind: billing.KindProduct, Price: 50},
	} {
		if err := a.deps.Billing.RegisterItem(ctx, item); err != nil {
			return err
		}
	}

	a.logger.Info().Str("data_dir", a.cfg.DataDir).Msg("demo dataset written")
	return nil
}
