package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoogleID string    `gorm:"column:google_id;uniqueIndex;not null" json:"-"`
	Email    string    `gorm:"not null" json:"email"`
	Name     string    `json:"name"`
	Picture  string    `json:"picture,omitempty"`

	// OAuth tokens are stored AES-GCM encrypted, never in plain text.
	EncryptedGoogleAccessToken  string `gorm:"column:encrypted_google_access_token" json:"-"`
	EncryptedGoogleRefreshToken string `gorm:"column:encrypted_google_refresh_token" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
