package http

// Handler serves the identity endpoints. Profile edits and sign-out belong
// to the auth provider's client SDK.
type Handler struct{}

func New() *Handler {
	return &Handler{}
}
