// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an account keyed by phone number. The phone is stored in
// normalized digits-only form; normalization happens at the service
// boundary, never at comparison time.
type User struct {
	BaseModel
	Phone        string     `json:"phone" gorm:"uniqueIndex;size:16;not null"`
	Email        string     `json:"email,omitempty" gorm:"size:255"`
	FirstName    string     `json:"first_name,omitempty" gorm:"size:100"`
	LastName     string     `json:"last_name,omitempty" gorm:"size:100"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Profile      JSONB      `json:"profile,omitempty" gorm:"type:jsonb"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
