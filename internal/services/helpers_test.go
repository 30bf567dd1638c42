package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hanuchaudhary/Job-Portal/internal/config"
	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
)

func testConfig() config.Config {
	return config.Config{
		Port:      "8080",
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
}

// seedUser inserts a user directly into the store. The password column is
// not a real hash; tests that exercise credential checks go through
// UserService.Register instead.
func seedUser(t *testing.T, store *repositories.MemoryStore, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "not-a-real-hash",
		FullName: "Test " + string(role),
		Role:     role,
	}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func seedJob(t *testing.T, store *repositories.MemoryStore, recruiterID, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		RecruiterID: recruiterID,
		Title:       title,
		Description: "builds and runs backend services",
		Location:    "Remote",
		Type:        "Full-time",
		IsOpen:      true,
	}
	require.NoError(t, store.Jobs().Create(context.Background(), job))
	return job
}

func seedCompany(t *testing.T, store *repositories.MemoryStore, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, Logo: "https://cdn.example.com/" + name + ".png"}
	require.NoError(t, store.Companies().Create(context.Background(), company))
	return company
}
