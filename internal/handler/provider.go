// Package handler serves the HTTP API. Handlers receive their services
// through constructor injection.
package handler

import (
	"midas_family_server/internal/service"
)

// Handlers aggregates the handler instances for the router.
type Handlers struct {
	Family *FamilyHandler
}

// NewHandlers creates all handlers from the service aggregate.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Family: NewFamilyHandler(svc.Family),
	}
}
