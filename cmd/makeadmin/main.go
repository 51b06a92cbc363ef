package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"carwash/internal/database"
	"carwash/internal/domain"
	"carwash/internal/repository"
)

// Promotes an existing account to admin by email. Run it once after the
// first registration on a fresh deployment:
//
//	go run ./cmd/makeadmin someone@example.com
func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		log.Fatal("usage: makeadmin <email>")
	}
	email := os.Args[1]

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "carwash.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	users := repository.NewUserRepository(db)
	user, err := users.UpdateRoleByEmail(context.Background(), email, domain.RoleAdmin)
	if err != nil {
		log.Fatalf("promotion failed for %s: %v", email, err)
	}

	log.Printf("%s (%s) is now %s", user.Email, user.FullName, user.Role)
}
