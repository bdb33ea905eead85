package model

// Account is a registered user as known to the identity provider.
// The credential itself is never held by this service; UserID is the
// provider-assigned subject, stable for the account's lifetime.
type Account struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int32  `json:"expiresIn"`
	UserID       string `json:"userId"`
	Username     string `json:"username"`
}
