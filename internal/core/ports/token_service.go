package ports

// TokenService issues and verifies the signed bearer tokens that authenticate
// requests. Tokens are self-contained: validity depends only on the signature
// and the embedded expiry, never on server-side session state.
type TokenService interface {
	// Issue signs a token asserting the given user identity as its subject.
	Issue(subjectID string) (string, error)
	// Verify checks signature and expiry and returns the subject on success.
	// Failures are domain.ErrTokenInvalid or domain.ErrTokenExpired.
	Verify(token string) (string, error)
}
