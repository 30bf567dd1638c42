package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hanuchaudhary/Job-Portal/internal/config"
	"github.com/hanuchaudhary/Job-Portal/internal/database"
	"github.com/hanuchaudhary/Job-Portal/internal/handlers"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
	"github.com/hanuchaudhary/Job-Portal/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside dev)
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// 3. Repositories
	users := repositories.NewUserRepository(db)
	companies := repositories.NewCompanyRepository(db)
	jobs := repositories.NewJobRepository(db)
	applications := repositories.NewApplicationRepository(db)
	savedJobs := repositories.NewSavedJobRepository(db)

	// 4. Services
	userService := services.NewUserService(users, cfg)
	companyService := services.NewCompanyService(companies)
	jobService := services.NewJobService(jobs, users, companies)
	applicationService := services.NewApplicationService(applications, jobs, users)
	savedJobService := services.NewSavedJobService(savedJobs, jobs)

	// 5. Handlers & Router
	r := handlers.NewRouter(
		cfg,
		handlers.NewUserHandler(userService),
		handlers.NewCompanyHandler(companyService),
		handlers.NewJobHandler(jobService),
		handlers.NewApplicationHandler(applicationService),
		handlers.NewSavedJobHandler(savedJobService),
	)

	log.Printf("server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed to start:", err)
	}
}
