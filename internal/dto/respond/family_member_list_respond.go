package respond

// FamilyMemberListRespond wraps a membership list with its count.
type FamilyMemberListRespond struct {
	Count int                   `json:"count"`
	Items []FamilyMemberRespond `json:"items"`
}
