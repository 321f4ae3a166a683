package request

// AddUserToFamilyRequest adds the user identified by email to a family.
type AddUserToFamilyRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FamilyId uint64 `json:"family_id" binding:"required"`
}
