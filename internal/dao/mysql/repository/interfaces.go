// Package repository implements the data access layer. Interfaces live
// here; implementations sit in their own files.
package repository

import (
	"midas_family_server/internal/model"

	"gorm.io/gorm"
)

// FamilyRepository is the data access surface for families and their
// membership rows. Boolean-returning mutations report false when the
// target row does not exist instead of raising an error.
type FamilyRepository interface {
	// AddNewFamily inserts the family together with the founder's
	// MainAdministrator membership and returns the generated id.
	// Fails with CodeInvalidParam on a blank name and CodeFamilyExist
	// on a duplicate one.
	AddNewFamily(family *model.Family) (uint64, error)
	// DeleteFamily removes the family and all of its membership rows.
	DeleteFamily(id uint64) (bool, error)
	// GetFamilyById returns the family or (nil, nil) when absent.
	GetFamilyById(id uint64) (*model.Family, error)
	// AddUserToFamily inserts a membership with the default Child role.
	// False when the (user, family) pair already has a row.
	AddUserToFamily(userId, familyId uint64) (bool, error)
	// DeleteUserFromFamily removes one membership row.
	DeleteUserFromFamily(userId, familyId uint64) (bool, error)
	// SetUserFamilyRole updates only the role id of an existing row.
	SetUserFamilyRole(membership *model.UserFamilyRole) (bool, error)
	// GetFamilyMemberRolesForUser returns the user's membership rows
	// with Family and FamilyRole preloaded; empty slice when none.
	GetFamilyMemberRolesForUser(userId uint64) ([]model.UserFamilyRole, error)
	// GetFamilyMemberRolesForFamily returns one family's membership
	// rows with associations preloaded.
	GetFamilyMemberRolesForFamily(familyId uint64) ([]model.UserFamilyRole, error)
}

// Repositories aggregates the repository instances and is the injection
// point for the service layer.
type Repositories struct {
	db     *gorm.DB
	Family FamilyRepository
}

// NewRepositories wires all repositories onto one GORM handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:     db,
		Family: NewFamilyRepository(db),
	}
}

// Transaction runs fn inside a database transaction, handing it a
// Repositories bound to the transactional handle. Any error rolls the
// whole transaction back.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
