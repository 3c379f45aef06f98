package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"railassist/backend/internal/auth"
	"railassist/backend/internal/complaint"
	"railassist/backend/internal/config"
	"railassist/backend/internal/logger"
	"railassist/backend/internal/models"
	"railassist/backend/internal/notify"
	"railassist/backend/internal/routing"
	"railassist/backend/internal/storage"
	"railassist/backend/internal/support"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const usage = `Usage: admin <command> [args]

Commands:
  list [department]                          list open complaints
  update-status <id> <status> [department]   move a complaint along the lifecycle
  create-admin <email> <password> <name>     create a staff account
  seed-support                               load the static support directory
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	// No Redis: event publishing is skipped for CLI-driven updates, the
	// notification and message side effects still run.
	store := storage.NewService(db, nil, log)

	router, err := routing.New()
	if err != nil {
		log.Fatal("invalid department routing configuration", zap.Error(err))
	}
	pipeline := notify.NewPipeline(store, router, nil, log)
	complaints := complaint.NewService(store, router, pipeline, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		var (
			found []models.Complaint
			err   error
		)
		if len(os.Args) > 2 {
			found, err = complaints.ByDepartment(ctx, os.Args[2])
		} else {
			found, err = complaints.All(ctx)
		}
		if err != nil {
			log.Fatal("failed to list complaints", zap.Error(err))
		}
		for _, c := range found {
			if c.Status == models.StatusResolved {
				continue
			}
			fmt.Printf("%s  %-12s %-22s %s\n", c.ID, c.Status, c.Department, c.Location)
		}

	case "update-status":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin update-status <id> <status> [department]")
			os.Exit(1)
		}
		department := ""
		if len(os.Args) > 4 {
			department = os.Args[4]
		}
		updated, err := complaints.UpdateStatus(ctx, os.Args[2], models.ComplaintStatus(os.Args[3]), department)
		if err != nil {
			log.Fatal("failed to update complaint", zap.Error(err))
		}
		fmt.Printf("Complaint %s is now %s (%s).\n", updated.ID, updated.Status, updated.Department)

	case "create-admin":
		if len(os.Args) < 5 {
			fmt.Println("Usage: admin create-admin <email> <password> <name>")
			os.Exit(1)
		}
		if err := createAdmin(ctx, store, os.Args[2], os.Args[3], os.Args[4]); err != nil {
			log.Fatal("failed to create admin", zap.Error(err))
		}
		fmt.Printf("Admin account %s created.\n", os.Args[2])

	case "seed-support":
		supportSvc := support.NewService(store)
		if err := supportSvc.Seed(ctx, config.SeedEmergencyContacts, config.SeedFAQs); err != nil {
			log.Fatal("failed to seed support directory", zap.Error(err))
		}
		fmt.Println("Support directory seeded.")

	default:
		fmt.Print(usage)
		os.Exit(1)
	}
}

func createAdmin(ctx context.Context, store auth.Store, email, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return store.CreateUser(ctx, &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         models.RoleAdmin,
	})
}
