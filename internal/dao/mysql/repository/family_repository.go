package repository

import (
	"errors"
	"strings"

	"midas_family_server/internal/model"
	"midas_family_server/pkg/enum/family/family_role_enum"
	"midas_family_server/pkg/errorx"

	"gorm.io/gorm"
)

// familyRepository implements FamilyRepository on GORM.
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a FamilyRepository instance.
func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

// AddNewFamily validates the name, then inserts the family row and the
// founder's MainAdministrator membership in a single transaction so a
// family is never left without an administrator.
func (r *familyRepository) AddNewFamily(family *model.Family) (uint64, error) {
	if strings.TrimSpace(family.Name) == "" {
		return 0, errorx.New(errorx.CodeInvalidParam, "family name is empty")
	}

	var count int64
	if err := r.db.Model(&model.Family{}).Where("name = ?", family.Name).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "check family name %q", family.Name)
	}
	if count > 0 {
		return 0, errorx.Newf(errorx.CodeFamilyExist, "family with name %s already exists", family.Name)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(family).Error; err != nil {
			return wrapDBError(err, "create family")
		}
		founderRole := model.UserFamilyRole{
			UserId:       family.FounderId,
			FamilyId:     family.Id,
			FamilyRoleId: family_role_enum.MainAdministrator,
		}
		if err := tx.Create(&founderRole).Error; err != nil {
			return wrapDBError(err, "create founder membership")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return family.Id, nil
}

// DeleteFamily removes the family together with its membership rows.
// False when no such family exists.
func (r *familyRepository) DeleteFamily(id uint64) (bool, error) {
	var family model.Family
	if err := r.db.Where("id = ?", id).Take(&family).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, wrapDBErrorf(err, "find family id=%d", id)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// membership rows cascade with the family; deleted explicitly so
		// the behavior does not depend on foreign keys being enforced
		if err := tx.Where("family_id = ?", id).Delete(&model.UserFamilyRole{}).Error; err != nil {
			return wrapDBErrorf(err, "delete memberships family_id=%d", id)
		}
		if err := tx.Delete(&family).Error; err != nil {
			return wrapDBErrorf(err, "delete family id=%d", id)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetFamilyById returns (nil, nil) when the family does not exist.
func (r *familyRepository) GetFamilyById(id uint64) (*model.Family, error) {
	var family model.Family
	if err := r.db.Where("id = ?", id).Take(&family).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDBErrorf(err, "find family id=%d", id)
	}
	return &family, nil
}

// AddUserToFamily inserts a membership with the default Child role.
func (r *familyRepository) AddUserToFamily(userId, familyId uint64) (bool, error) {
	existing, err := r.findMembership(userId, familyId)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	membership := model.UserFamilyRole{
		UserId:       userId,
		FamilyId:     familyId,
		FamilyRoleId: family_role_enum.Child,
	}
	if err := r.db.Create(&membership).Error; err != nil {
		return false, wrapDBErrorf(err, "create membership user_id=%d family_id=%d", userId, familyId)
	}
	return true, nil
}

// DeleteUserFromFamily removes one membership row.
func (r *familyRepository) DeleteUserFromFamily(userId, familyId uint64) (bool, error) {
	existing, err := r.findMembership(userId, familyId)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := r.db.Where("user_id = ? AND family_id = ?", userId, familyId).Delete(&model.UserFamilyRole{}).Error; err != nil {
		return false, wrapDBErrorf(err, "delete membership user_id=%d family_id=%d", userId, familyId)
	}
	return true, nil
}

// SetUserFamilyRole updates only the role id of an existing membership.
func (r *familyRepository) SetUserFamilyRole(membership *model.UserFamilyRole) (bool, error) {
	existing, err := r.findMembership(membership.UserId, membership.FamilyId)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	err = r.db.Model(&model.UserFamilyRole{}).
		Where("user_id = ? AND family_id = ?", membership.UserId, membership.FamilyId).
		Update("family_role_id", membership.FamilyRoleId).Error
	if err != nil {
		return false, wrapDBErrorf(err, "update role user_id=%d family_id=%d", membership.UserId, membership.FamilyId)
	}
	return true, nil
}

// GetFamilyMemberRolesForUser returns all memberships of one user with
// Family and FamilyRole preloaded.
func (r *familyRepository) GetFamilyMemberRolesForUser(userId uint64) ([]model.UserFamilyRole, error) {
	var memberships []model.UserFamilyRole
	err := r.db.Preload("Family").Preload("FamilyRole").
		Where("user_id = ?", userId).
		Find(&memberships).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find memberships user_id=%d", userId)
	}
	return memberships, nil
}

// GetFamilyMemberRolesForFamily returns all memberships of one family
// with Family and FamilyRole preloaded.
func (r *familyRepository) GetFamilyMemberRolesForFamily(familyId uint64) ([]model.UserFamilyRole, error) {
	var memberships []model.UserFamilyRole
	err := r.db.Preload("Family").Preload("FamilyRole").
		Where("family_id = ?", familyId).
		Find(&memberships).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find memberships family_id=%d", familyId)
	}
	return memberships, nil
}

// findMembership returns (nil, nil) when the (user, family) pair has no
// row.
func (r *familyRepository) findMembership(userId, familyId uint64) (*model.UserFamilyRole, error) {
	var membership model.UserFamilyRole
	err := r.db.Where("user_id = ? AND family_id = ?", userId, familyId).Take(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDBErrorf(err, "find membership user_id=%d family_id=%d", userId, familyId)
	}
	return &membership, nil
}
