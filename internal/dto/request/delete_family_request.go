package request

// DeleteFamilyRequest identifies the family to delete (query parameter).
type DeleteFamilyRequest struct {
	Id uint64 `form:"id" binding:"required"`
}
