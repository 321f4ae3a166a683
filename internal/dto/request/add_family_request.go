package request

// AddFamilyRequest creates a new family founded by the given user.
type AddFamilyRequest struct {
	Name      string `json:"name" binding:"required"`
	FounderId uint64 `json:"founder_id" binding:"required"`
}
