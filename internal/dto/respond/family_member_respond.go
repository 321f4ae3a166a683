package respond

// UserRespond is the member profile as resolved through the user
// service.
type UserRespond struct {
	Id        uint64 `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FamilyRespond describes the family a membership belongs to.
type FamilyRespond struct {
	Id        uint64 `json:"id"`
	Name      string `json:"name"`
	FounderId uint64 `json:"founder_id"`
}

// FamilyRoleRespond describes the role held in the family.
type FamilyRoleRespond struct {
	Id   uint64 `json:"id"`
	Name string `json:"name"`
}

// FamilyMemberRespond is one {user, family, role} membership entry.
type FamilyMemberRespond struct {
	User       UserRespond       `json:"user"`
	Family     FamilyRespond     `json:"family"`
	FamilyRole FamilyRoleRespond `json:"family_role"`
}
