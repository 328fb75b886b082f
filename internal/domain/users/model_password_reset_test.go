package users

import (
	"testing"
	"time"
)

func TestPasswordResetTokenUsable(t *testing.T) {
	now := time.Now()
	spent := now.Add(-10 * time.Minute)

	tests := []struct {
		name  string
		token PasswordResetToken
		want  bool
	}{
		{
			name:  "fresh token",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "expired",
			token: PasswordResetToken{ExpiresAt: now.Add(-time.Minute)},
			want:  false,
		},
		{
			name:  "expires exactly now",
			token: PasswordResetToken{ExpiresAt: now},
			want:  false,
		},
		{
			name:  "already consumed",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour), UsedAt: &spent},
			want:  false,
		},
		{
			name:  "consumed and expired",
			token: PasswordResetToken{ExpiresAt: now.Add(-time.Hour), UsedAt: &spent},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Usable(now); got != tt.want {
				t.Errorf("Usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPasswordResetToken(t *testing.T) {
	before := time.Now()
	a := NewPasswordResetToken("user-1", time.Hour)
	b := NewPasswordResetToken("user-1", time.Hour)

	if a.Token == "" || a.Token == b.Token {
		t.Errorf("tokens must be unique and non-empty: %q vs %q", a.Token, b.Token)
	}
	if a.UserID != "user-1" {
		t.Errorf("UserID = %q", a.UserID)
	}
	if a.UsedAt != nil {
		t.Error("new token already marked used")
	}
	if a.ExpiresAt.Before(before.Add(time.Hour)) {
		t.Errorf("ExpiresAt = %v, want at least an hour out", a.ExpiresAt)
	}
	if !a.Usable(time.Now()) {
		t.Error("new token not usable")
	}
}
