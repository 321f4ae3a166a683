package model

// UserFamilyRole binds one user to one family with exactly one role. The
// composite primary key rules out a user holding two roles in the same
// family. Membership rows go away with their family (ON DELETE CASCADE).
type UserFamilyRole struct {
	UserId       uint64     `gorm:"column:user_id;primaryKey;autoIncrement:false;comment:user id"`
	FamilyId     uint64     `gorm:"column:family_id;primaryKey;autoIncrement:false;comment:family id"`
	FamilyRoleId uint64     `gorm:"column:family_role_id;not null;comment:role id"`
	Family       Family     `gorm:"foreignKey:FamilyId;constraint:OnDelete:CASCADE"`
	FamilyRole   FamilyRole `gorm:"foreignKey:FamilyRoleId"`
}

func (UserFamilyRole) TableName() string {
	return "user_family_role"
}
