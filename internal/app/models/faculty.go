package models

import "time"

// Faculty represents an academic administrative unit students belong to.
type Faculty struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Dean      string    `json:"dean" db:"dean"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
