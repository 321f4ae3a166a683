package family_role_enum

// Role ids of the static family_role lookup table. Seeded once at store
// initialization, never changed afterwards.
const (
	MainAdministrator uint64 = 1
	Parent            uint64 = 2
	Child             uint64 = 3
)

// DisplayNames maps role ids to the names stored in the lookup table.
var DisplayNames = map[uint64]string{
	MainAdministrator: "Main administrator",
	Parent:            "Parent",
	Child:             "Child",
}
