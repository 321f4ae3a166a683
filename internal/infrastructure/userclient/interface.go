package userclient

import "context"

// UserProfile is the user record as served by the external user service.
type UserProfile struct {
	Id        uint64 `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserService is the read-only contract this service has with the
// external user-identity service. Absence is (nil, nil), not an error.
type UserService interface {
	GetUserById(ctx context.Context, id uint64) (*UserProfile, error)
	GetUserByEmail(ctx context.Context, email string) (*UserProfile, error)
}
