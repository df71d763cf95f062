package entity

import "time"

// Ruoli validi per User.
const (
	RoleAdmin     = "admin"
	RoleOperatore = "operatore"
)

// User rappresenta un utente del sistema. Solo l'admin può importare
// l'anagrafica da Excel o eliminare movimenti.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, mai in chiaro dopo la persistenza
	Name         string
	Role         string // admin, operatore
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
