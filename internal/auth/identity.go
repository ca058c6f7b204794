package auth

// OAuthIdentity represents user information obtained from Discord OAuth.
type OAuthIdentity struct {
	ProviderID string
	Username   string
	AvatarURL  *string
}
