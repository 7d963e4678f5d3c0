package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/davidmtz/usuarios-api/config"
	"github.com/davidmtz/usuarios-api/internal/infrastructure/security"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	nombre := "Usuario Demo"

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (nombre, email, password_hash, telefono, edad)
		VALUES ($1, lower($2), $3, $4, $5)
		ON CONFLICT (lower(email)) DO UPDATE SET nombre = EXCLUDED.nombre
		RETURNING id
	`, nombre, email, hash, "5512345678", 30).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)
}
