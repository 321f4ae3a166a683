package request

// GetFamilyMembersRequest identifies the family whose member list is
// requested (query parameter).
type GetFamilyMembersRequest struct {
	FamilyId uint64 `form:"family_id" binding:"required"`
}
