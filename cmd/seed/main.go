package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"carwash/internal/database"
	"carwash/internal/domain"
	"carwash/internal/repository"
)

// Seeds the catalog and a couple of test accounts. Intended for local
// development and demo environments; it wipes existing data first.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "carwash.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	services := repository.NewServiceRepository(db)

	log.Println("Creating users...")
	createUser(ctx, users, "admin@carwash56.fr", "admin123", "Admin Carwash", "+33 6 00 00 00 01", domain.RoleAdmin)
	createUser(ctx, users, "client@test.fr", "client123", "Jean Dupont", "+33 6 00 00 00 02", domain.RoleClient)
	createUser(ctx, users, "washer@carwash56.fr", "washer123", "Karim Laveur", "+33 6 00 00 00 03", domain.RoleWasher)

	log.Println("Creating services...")
	seedServices := []domain.Service{
		{
			Name:        "Lavage extérieur rapide",
			Description: "Lavage extérieur à la main, jantes comprises",
			PriceEUR:    25,
			DurationMin: 30,
			Active:      true,
		},
		{
			Name:        "Complet intérieur + extérieur",
			Description: "Lavage complet, aspirateur et vitres",
			PriceEUR:    50,
			DurationMin: 60,
			Active:      true,
		},
		{
			Name:        "Luxe détaillage",
			Description: "Détaillage complet avec cire et traitement cuir",
			PriceEUR:    80,
			DurationMin: 90,
			Active:      true,
		},
	}
	for i := range seedServices {
		if err := services.Create(ctx, &seedServices[i]); err != nil {
			log.Fatal("service seed failed:", err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Admin:  admin@carwash56.fr / admin123")
	log.Println("Client: client@test.fr / client123")
	log.Println("Washer: washer@carwash56.fr / washer123")
}

func createUser(ctx context.Context, repo *repository.UserRepository, email, password, fullName, phone string, role domain.UserRole) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	u := &domain.User{
		FullName:     fullName,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal("user seed failed:", err)
	}
}
