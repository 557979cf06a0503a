package domain

// User is the identity behind a request, as asserted by the auth provider.
// Accounts live with the provider; nothing here is persisted.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Provider    string `json:"provider"`
}
