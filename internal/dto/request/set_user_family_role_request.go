package request

// SetUserFamilyRoleRequest changes the role a family member holds.
type SetUserFamilyRoleRequest struct {
	Email        string `json:"email" binding:"required,email"`
	FamilyId     uint64 `json:"family_id" binding:"required"`
	FamilyRoleId uint64 `json:"family_role_id" binding:"required"`
}
