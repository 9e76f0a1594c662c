package model

// User is the single local profile. Currency holds an ISO-style currency
// code; legacy records stored a bare symbol instead, which boot migrates via
// MigrateCurrencySymbol.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Currency string `json:"currency"`
}

// DefaultUser returns the profile used before any settings are saved.
func DefaultUser() User {
	return User{
		Name:     "Personal Budget",
		Email:    "user@example.com",
		Avatar:   "PB",
		Currency: "USD",
	}
}

// Merge overlays the non-zero fields of patch onto the user and returns the
// result. This mirrors the shallow-merge semantics of profile updates.
func (u User) Merge(patch User) User {
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.Avatar != "" {
		u.Avatar = patch.Avatar
	}
	if patch.Currency != "" {
		u.Currency = patch.Currency
	}
	return u
}
