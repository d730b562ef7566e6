package auth

// Claims representa la información asociada a un token válido.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
