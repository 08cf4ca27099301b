package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Compte métier provisionné par l'agence avant l'inscription.
// PasswordHash vide = invitation pas encore activée.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`

	BusinessName string `gorm:"size:100" json:"business_name"`
	BusinessType string `gorm:"size:50" json:"business_type"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
	Timezone     string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) Activated() bool {
	return u.PasswordHash != ""
}
