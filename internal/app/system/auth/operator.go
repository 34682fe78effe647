package auth

import "context"

// OperatorID is the fixed session user ID for the configured operator
// account. The service has a single operator credential set through
// configuration rather than a user database.
const OperatorID = "1"

// StaticFetcher is a UserFetcher backed by the configured operator
// account.
type StaticFetcher struct {
	Name  string
	Email string
	Role  string
}

// FetchUser returns the operator for OperatorID and nil otherwise.
func (f *StaticFetcher) FetchUser(_ context.Context, userID string) *SessionUser {
	if userID != OperatorID {
		return nil
	}
	return &SessionUser{
		ID:    OperatorID,
		Name:  f.Name,
		Email: f.Email,
		Role:  f.Role,
	}
}
