package service

import (
	"midas_family_server/internal/dao/mysql/repository"
	"midas_family_server/internal/infrastructure/userclient"
	"midas_family_server/internal/service/family"
)

// Services aggregates the service instances and is the injection point
// for the handler layer.
type Services struct {
	Family FamilyService
}

// NewServices wires the repositories and the user-service client into
// all services.
func NewServices(repos *repository.Repositories, users userclient.UserService) *Services {
	return &Services{
		Family: family.NewFamilyService(repos, users),
	}
}
