package family

import (
	"context"
	"fmt"
	"testing"

	mysql "midas_family_server/internal/dao/mysql"
	"midas_family_server/internal/dao/mysql/repository"
	"midas_family_server/internal/dto/request"
	"midas_family_server/internal/infrastructure/userclient"
	"midas_family_server/internal/model"
	"midas_family_server/pkg/enum/family/family_role_enum"
	"midas_family_server/pkg/errorx"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeUserService resolves users from fixed maps; nil means absent.
type fakeUserService struct {
	byId    map[uint64]*userclient.UserProfile
	byEmail map[string]*userclient.UserProfile
}

func (f *fakeUserService) GetUserById(ctx context.Context, id uint64) (*userclient.UserProfile, error) {
	return f.byId[id], nil
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*userclient.UserProfile, error) {
	return f.byEmail[email], nil
}

func newFakeUsers(profiles ...*userclient.UserProfile) *fakeUserService {
	f := &fakeUserService{
		byId:    map[uint64]*userclient.UserProfile{},
		byEmail: map[string]*userclient.UserProfile{},
	}
	for _, p := range profiles {
		f.byId[p.Id] = p
		f.byEmail[p.Email] = p
	}
	return f
}

func setupService(t *testing.T, users userclient.UserService) (*familyService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewFamilyService(repository.NewRepositories(db), users), db
}

// caller 8 founds "Test 1"; target user 1 (target@test.com) is a Child
// member. Mirrors the fixture the public API contract is specified
// against.
func setupFamilyFixture(t *testing.T, svc *familyService) uint64 {
	t.Helper()
	created, err := svc.AddNewFamily(context.Background(), request.AddFamilyRequest{
		Name:      "Test 1",
		FounderId: 8,
	})
	if err != nil {
		t.Fatalf("create family: %v", err)
	}
	if ok, err := svc.repos.Family.AddUserToFamily(1, created.Id); err != nil || !ok {
		t.Fatalf("add target member: ok=%v err=%v", ok, err)
	}
	return created.Id
}

func testUsers() *fakeUserService {
	return newFakeUsers(
		&userclient.UserProfile{Id: 8, Email: "admin@test.com", FirstName: "Test", LastName: "Testowy"},
		&userclient.UserProfile{Id: 1, Email: "target@test.com", FirstName: "Target", LastName: "User"},
	)
}

func TestAddNewFamily(t *testing.T) {
	svc, db := setupService(t, testUsers())

	created, err := svc.AddNewFamily(context.Background(), request.AddFamilyRequest{
		Name:      "Test 1",
		FounderId: 8,
	})
	if err != nil {
		t.Fatalf("create family: %v", err)
	}
	if created.Id == 0 || created.Name != "Test 1" {
		t.Errorf("respond = %+v, want generated id and name Test 1", created)
	}

	var membership model.UserFamilyRole
	if err := db.Where("user_id = ? AND family_id = ?", 8, created.Id).Take(&membership).Error; err != nil {
		t.Fatalf("load founder membership: %v", err)
	}
	if membership.FamilyRoleId != family_role_enum.MainAdministrator {
		t.Errorf("founder role = %d, want MainAdministrator", membership.FamilyRoleId)
	}
}

func TestAddNewFamilyUnknownFounder(t *testing.T) {
	svc, db := setupService(t, testUsers())

	_, err := svc.AddNewFamily(context.Background(), request.AddFamilyRequest{
		Name:      "Test 1",
		FounderId: 2137,
	})
	if err == nil {
		t.Fatal("expected error for unknown founder")
	}
	if errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Errorf("code = %d, want CodeUserNotExist", errorx.GetCode(err))
	}
	var count int64
	db.Model(&model.Family{}).Count(&count)
	if count != 0 {
		t.Errorf("family rows = %d, want 0", count)
	}
}

func TestDeleteFamilyAuthorization(t *testing.T) {
	svc, db := setupService(t, testUsers())
	familyId := setupFamilyFixture(t, svc)

	// non-administrator member
	deleted, err := svc.DeleteFamily(context.Background(), 1, familyId)
	if err != nil {
		t.Fatalf("delete as member: %v", err)
	}
	if deleted {
		t.Error("delete as member = true, want false")
	}

	// caller without any membership
	deleted, err = svc.DeleteFamily(context.Background(), 99, familyId)
	if err != nil {
		t.Fatalf("delete as stranger: %v", err)
	}
	if deleted {
		t.Error("delete as stranger = true, want false")
	}

	var count int64
	db.Model(&model.Family{}).Count(&count)
	if count != 1 {
		t.Fatalf("family rows = %d, want 1 (nothing mutated)", count)
	}

	// the main administrator
	deleted, err = svc.DeleteFamily(context.Background(), 8, familyId)
	if err != nil {
		t.Fatalf("delete as admin: %v", err)
	}
	if !deleted {
		t.Fatal("delete as admin = false, want true")
	}
	db.Model(&model.UserFamilyRole{}).Count(&count)
	if count != 0 {
		t.Errorf("membership rows = %d, want 0", count)
	}
}

func TestAddUserToFamily(t *testing.T) {
	svc, _ := setupService(t, testUsers())
	created, err := svc.AddNewFamily(context.Background(), request.AddFamilyRequest{
		Name:      "Test 1",
		FounderId: 8,
	})
	if err != nil {
		t.Fatalf("create family: %v", err)
	}

	added, err := svc.AddUserToFamily(context.Background(), request.AddUserToFamilyRequest{
		Email:    "target@test.com",
		FamilyId: created.Id,
	})
	if err != nil {
		t.Fatalf("add user: %v", err)
	}
	if !added {
		t.Fatal("add = false, want true")
	}

	// unknown email
	added, err = svc.AddUserToFamily(context.Background(), request.AddUserToFamilyRequest{
		Email:    "nobody@test.com",
		FamilyId: created.Id,
	})
	if err != nil {
		t.Fatalf("add unknown user: %v", err)
	}
	if added {
		t.Error("add unknown user = true, want false")
	}

	// unknown family
	added, err = svc.AddUserToFamily(context.Background(), request.AddUserToFamilyRequest{
		Email:    "target@test.com",
		FamilyId: 2137,
	})
	if err != nil {
		t.Fatalf("add to unknown family: %v", err)
	}
	if added {
		t.Error("add to unknown family = true, want false")
	}
}

func TestDeleteUserFromFamily(t *testing.T) {
	svc, _ := setupService(t, testUsers())
	familyId := setupFamilyFixture(t, svc)

	// non-administrator caller is refused before any lookup
	deleted, err := svc.DeleteUserFromFamily(context.Background(), 1, request.DeleteUserFromFamilyRequest{
		Email:    "target@test.com",
		FamilyId: familyId,
	})
	if err != nil {
		t.Fatalf("delete as member: %v", err)
	}
	if deleted {
		t.Error("delete as member = true, want false")
	}

	deleted, err = svc.DeleteUserFromFamily(context.Background(), 8, request.DeleteUserFromFamilyRequest{
		Email:    "target@test.com",
		FamilyId: familyId,
	})
	if err != nil {
		t.Fatalf("delete as admin: %v", err)
	}
	if !deleted {
		t.Fatal("delete as admin = false, want true")
	}
}

func TestSetUserFamilyRole(t *testing.T) {
	svc, db := setupService(t, testUsers())
	familyId := setupFamilyFixture(t, svc)

	set, err := svc.SetUserFamilyRole(context.Background(), 8, request.SetUserFamilyRoleRequest{
		Email:        "target@test.com",
		FamilyId:     familyId,
		FamilyRoleId: family_role_enum.Parent,
	})
	if err != nil {
		t.Fatalf("set role: %v", err)
	}
	if !set {
		t.Fatal("set = false, want true")
	}

	var membership model.UserFamilyRole
	if err := db.Where("user_id = ? AND family_id = ?", 1, familyId).Take(&membership).Error; err != nil {
		t.Fatalf("load membership: %v", err)
	}
	if membership.FamilyRoleId != family_role_enum.Parent {
		t.Errorf("role = %d, want Parent", membership.FamilyRoleId)
	}
}

func TestSetUserFamilyRoleUnauthorizedFamily(t *testing.T) {
	svc, _ := setupService(t, testUsers())
	setupFamilyFixture(t, svc)

	// caller holds no membership in family 2137
	set, err := svc.SetUserFamilyRole(context.Background(), 8, request.SetUserFamilyRoleRequest{
		Email:        "target@test.com",
		FamilyId:     2137,
		FamilyRoleId: family_role_enum.Child,
	})
	if err != nil {
		t.Fatalf("set role: %v", err)
	}
	if set {
		t.Error("set = true, want false")
	}
}

func TestGetFamilyMembershipsForActiveUser(t *testing.T) {
	svc, _ := setupService(t, testUsers())
	familyId := setupFamilyFixture(t, svc)

	list, err := svc.GetFamilyMembershipsForActiveUser(context.Background(), 8)
	if err != nil {
		t.Fatalf("get memberships: %v", err)
	}
	if list.Count != 1 || len(list.Items) != 1 {
		t.Fatalf("count = %d items = %d, want 1/1", list.Count, len(list.Items))
	}
	item := list.Items[0]
	if item.User.Id != 8 || item.User.Email != "admin@test.com" {
		t.Errorf("user = %+v, want resolved profile of user 8", item.User)
	}
	if item.Family.Id != familyId || item.Family.Name != "Test 1" {
		t.Errorf("family = %+v, want Test 1", item.Family)
	}
	if item.FamilyRole.Id != family_role_enum.MainAdministrator || item.FamilyRole.Name != "Main administrator" {
		t.Errorf("role = %+v, want Main administrator", item.FamilyRole)
	}
}

func TestGetFamilyMembers(t *testing.T) {
	svc, _ := setupService(t, testUsers())
	familyId := setupFamilyFixture(t, svc)

	list, err := svc.GetFamilyMembers(context.Background(), 1, familyId)
	if err != nil {
		t.Fatalf("get members: %v", err)
	}
	if list == nil || list.Count != 2 {
		t.Fatalf("list = %+v, want 2 members", list)
	}

	// non-member sees nothing
	list, err = svc.GetFamilyMembers(context.Background(), 99, familyId)
	if err != nil {
		t.Fatalf("get members as stranger: %v", err)
	}
	if list != nil {
		t.Errorf("list = %+v, want nil for non-member", list)
	}
}

func TestIsFamilyAdmin(t *testing.T) {
	svc, _ := setupService(t, testUsers())
	familyId := setupFamilyFixture(t, svc)

	cases := []struct {
		callerId uint64
		familyId uint64
		want     bool
	}{
		{8, familyId, true},
		{1, familyId, false}, // Child member
		{8, 2137, false},     // no membership row
		{99, familyId, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("caller=%d family=%d", tc.callerId, tc.familyId), func(t *testing.T) {
			got, err := svc.isFamilyAdmin(tc.callerId, tc.familyId)
			if err != nil {
				t.Fatalf("isFamilyAdmin: %v", err)
			}
			if got != tc.want {
				t.Errorf("isFamilyAdmin = %v, want %v", got, tc.want)
			}
		})
	}
}
