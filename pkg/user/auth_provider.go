package user

import (
	"context"

	"foodie-journal/entities"
)

// AuthProvider decides whether a login attempt is accepted. The app ships with
// a stub that never checks the password: any well-formed credentials for a
// known identity start a session. A real verifier can replace it without
// touching the user service or anything above it.
type AuthProvider interface {
	Verify(ctx context.Context, user *entities.User, password string) error
}

type stubAuthProvider struct{}

func NewStubAuthProvider() AuthProvider {
	return stubAuthProvider{}
}

func (stubAuthProvider) Verify(_ context.Context, _ *entities.User, _ string) error {
	return nil
}
