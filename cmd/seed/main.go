package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"geoportal/internal/config"
	"geoportal/internal/db"
	"geoportal/internal/model"
	"geoportal/internal/repository"
)

const seedPassword = "hashedpassword123"

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Log{}, &model.SpatialData{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	logRepo := repository.NewLogRepository(gormDB)
	spatialRepo := repository.NewSpatialDataRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin, err := upsertUser(ctx, userRepo, &model.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Admin user ready (id=%d)", admin.ID)

	user, err := upsertUser(ctx, userRepo, &model.User{
		Name:         "User",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	})
	if err != nil {
		log.Fatalf("Failed to seed regular user: %v", err)
	}
	log.Printf("Regular user ready (id=%d)", user.ID)

	logs := []model.Log{
		{
			UserID:        admin.ID,
			ActionType:    "copy",
			ActionDetails: "Copied path/to/file1",
			IsSuccess:     true,
			Device:        "Desktop",
			Timestamp:     time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC),
		},
		{
			UserID:        admin.ID,
			ActionType:    "view",
			ActionDetails: "Viewed dashboard",
			IsSuccess:     true,
			Device:        "Mobile",
			Timestamp:     time.Date(2025, 9, 24, 14, 0, 0, 0, time.UTC),
		},
		{
			UserID:        user.ID,
			ActionType:    "view",
			ActionDetails: "Viewed map",
			IsSuccess:     false,
			Device:        "Desktop",
			Timestamp:     time.Date(2025, 9, 24, 16, 0, 0, 0, time.UTC),
		},
	}
	for i := range logs {
		if err := logRepo.Create(ctx, &logs[i]); err != nil {
			log.Fatalf("Failed to seed log: %v", err)
		}
	}
	log.Printf("Sample logs created: %d", len(logs))

	layers := []model.SpatialData{
		{
			Name:        "Green Area 1",
			Category:    model.CategoryGreenArea,
			Description: "Green space in front of the cafeteria",
			Group:       "Uncategorized",
			WFSGetURL:   cfg.WMSBaseURL,
			WFSPostURL:  cfg.WMSBaseURL,
		},
		{
			Name:        "Lecture Building A",
			Category:    model.CategoryBuilding,
			Description: "Faculty of Science lecture building",
			Group:       "Uncategorized",
			WFSGetURL:   cfg.WMSBaseURL,
			WFSPostURL:  cfg.WMSBaseURL,
		},
	}
	for i := range layers {
		if err := spatialRepo.Create(ctx, &layers[i]); err != nil {
			log.Fatalf("Failed to seed spatial data: %v", err)
		}
	}
	log.Printf("Sample spatial data created: %d", len(layers))

	log.Println("Seed completed successfully!")
}

// upsertUser creates the user unless a row with the same email already
// exists, in which case the existing row is returned untouched.
func upsertUser(ctx context.Context, repo repository.UserRepository, user *model.User) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
