package auth

import "time"

// Token es la credencial opaca de un usuario. Uno por usuario; no expira.
type Token struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}
