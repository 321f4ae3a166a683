// Package service defines the business layer interfaces consumed by the
// handler layer.
package service

import (
	"context"

	"midas_family_server/internal/dto/request"
	"midas_family_server/internal/dto/respond"
)

// FamilyService is the family/membership business interface. Caller
// identity arrives as an already-resolved user id (extracted from the
// bearer token by middleware) so authorization stays independently
// testable. Boolean results collapse "missing" and "forbidden" into
// false; the transport layer reports both as 404.
type FamilyService interface {
	// AddNewFamily creates a family founded by req.FounderId, who
	// becomes its MainAdministrator.
	AddNewFamily(ctx context.Context, req request.AddFamilyRequest) (*respond.AddFamilyRespond, error)
	// DeleteFamily removes a family. Callers that are not the family's
	// MainAdministrator get false and nothing is mutated.
	DeleteFamily(ctx context.Context, callerId, familyId uint64) (bool, error)
	// AddUserToFamily adds the user identified by email with the
	// default Child role.
	AddUserToFamily(ctx context.Context, req request.AddUserToFamilyRequest) (bool, error)
	// DeleteUserFromFamily removes a member. MainAdministrator only.
	DeleteUserFromFamily(ctx context.Context, callerId uint64, req request.DeleteUserFromFamilyRequest) (bool, error)
	// SetUserFamilyRole changes a member's role. MainAdministrator only.
	SetUserFamilyRole(ctx context.Context, callerId uint64, req request.SetUserFamilyRoleRequest) (bool, error)
	// GetFamilyMembershipsForActiveUser lists the caller's own
	// memberships with resolved user profiles.
	GetFamilyMembershipsForActiveUser(ctx context.Context, callerId uint64) (*respond.FamilyMemberListRespond, error)
	// GetFamilyMembers lists one family's members. Nil when the caller
	// is not a member of that family.
	GetFamilyMembers(ctx context.Context, callerId, familyId uint64) (*respond.FamilyMemberListRespond, error)
}
