package respond

// AddFamilyRespond is returned after a successful family creation.
type AddFamilyRespond struct {
	Id   uint64 `json:"id"`
	Name string `json:"name"`
}
