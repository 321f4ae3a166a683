package request

// DeleteUserFromFamilyRequest removes the user identified by email from
// a family.
type DeleteUserFromFamilyRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FamilyId uint64 `json:"family_id" binding:"required"`
}
