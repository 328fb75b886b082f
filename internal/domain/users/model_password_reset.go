package users

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a single-use, expiring credential for the
// forgot-password flow. A user holds at most one live token; issuing a new
// one supersedes any earlier one.
type PasswordResetToken struct {
	ID        string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;index" json:"-"`
	User      User       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Token     string     `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewPasswordResetToken issues a token for the user, valid for ttl from now.
func NewPasswordResetToken(userID string, ttl time.Duration) PasswordResetToken {
	return PasswordResetToken{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Usable reports whether the token can still redeem a password reset at
// instant now: not yet consumed and not expired.
func (t PasswordResetToken) Usable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
