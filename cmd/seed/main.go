// Crea l'utente admin iniziale da variabili d'ambiente
// (ADMIN_EMAIL, ADMIN_PASSWORD, ADMIN_NAME). Idempotente: se l'email
// esiste già non fa nulla.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rive3FY/magazzino-app/internal/domain"
	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
	"github.com/Rive3FY/magazzino-app/internal/infrastructure/postgres"
	"github.com/Rive3FY/magazzino-app/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("file .env non trovato, uso solo le variabili d'ambiente: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("caricamento configurazione: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL e ADMIN_PASSWORD sono obbligatorie")
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Amministratore"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("connessione a PostgreSQL: %v", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	userRepo := postgres.NewUserRepository(pool)
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Printf("utente admin %s già presente, nessuna modifica", email)
			return
		}
		log.Fatalf("creazione admin: %v", err)
	}
	log.Printf("utente admin %s creato", email)
}
