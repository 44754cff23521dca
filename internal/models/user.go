package models

import "time"

// User, kullanıcı bilgilerini ve kullanıcıya ait sepeti temsil eder.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Cart         Cart      `json:"cart"`
	CreatedAt    time.Time `json:"created_at"`
}
