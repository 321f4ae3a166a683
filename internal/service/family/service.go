package family

import (
	"context"

	"go.uber.org/zap"

	"midas_family_server/internal/dao/mysql/repository"
	"midas_family_server/internal/dto/request"
	"midas_family_server/internal/dto/respond"
	"midas_family_server/internal/infrastructure/userclient"
	"midas_family_server/internal/model"
	"midas_family_server/pkg/enum/family/family_role_enum"
	"midas_family_server/pkg/errorx"
)

// familyService orchestrates the repository and the user-service client
// and enforces the single authorization rule: destructive and
// role-changing operations require the caller to be the family's
// MainAdministrator.
type familyService struct {
	repos *repository.Repositories
	users userclient.UserService
}

// NewFamilyService wires the dependencies.
func NewFamilyService(repos *repository.Repositories, users userclient.UserService) *familyService {
	return &familyService{
		repos: repos,
		users: users,
	}
}

// AddNewFamily resolves the founder through the user service and
// delegates creation to the repository.
func (s *familyService) AddNewFamily(ctx context.Context, req request.AddFamilyRequest) (*respond.AddFamilyRespond, error) {
	founder, err := s.users.GetUserById(ctx, req.FounderId)
	if err != nil {
		zap.L().Error("resolve founder failed", zap.Uint64("founderId", req.FounderId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if founder == nil {
		return nil, errorx.Newf(errorx.CodeUserNotExist, "could not create a family with non-existing user %d", req.FounderId)
	}

	family := model.Family{
		Name:      req.Name,
		FounderId: req.FounderId,
	}
	id, err := s.repos.Family.AddNewFamily(&family)
	if err != nil {
		return nil, err
	}

	return &respond.AddFamilyRespond{
		Id:   id,
		Name: req.Name,
	}, nil
}

// DeleteFamily removes a family when the caller administers it.
func (s *familyService) DeleteFamily(ctx context.Context, callerId, familyId uint64) (bool, error) {
	admin, err := s.isFamilyAdmin(callerId, familyId)
	if err != nil {
		return false, err
	}
	if !admin {
		return false, nil
	}
	return s.repos.Family.DeleteFamily(familyId)
}

// AddUserToFamily resolves the target user and family; either being
// absent yields false.
func (s *familyService) AddUserToFamily(ctx context.Context, req request.AddUserToFamilyRequest) (bool, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		zap.L().Error("resolve user by email failed", zap.String("email", req.Email), zap.Error(err))
		return false, errorx.ErrServerBusy
	}
	family, err := s.repos.Family.GetFamilyById(req.FamilyId)
	if err != nil {
		return false, err
	}
	if user == nil || family == nil {
		return false, nil
	}
	return s.repos.Family.AddUserToFamily(user.Id, family.Id)
}

// DeleteUserFromFamily removes a member, MainAdministrator callers only.
func (s *familyService) DeleteUserFromFamily(ctx context.Context, callerId uint64, req request.DeleteUserFromFamilyRequest) (bool, error) {
	admin, err := s.isFamilyAdmin(callerId, req.FamilyId)
	if err != nil {
		return false, err
	}
	if !admin {
		return false, nil
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		zap.L().Error("resolve user by email failed", zap.String("email", req.Email), zap.Error(err))
		return false, errorx.ErrServerBusy
	}
	if user == nil {
		return false, nil
	}
	return s.repos.Family.DeleteUserFromFamily(user.Id, req.FamilyId)
}

// SetUserFamilyRole changes a member's role, MainAdministrator callers
// only.
func (s *familyService) SetUserFamilyRole(ctx context.Context, callerId uint64, req request.SetUserFamilyRoleRequest) (bool, error) {
	admin, err := s.isFamilyAdmin(callerId, req.FamilyId)
	if err != nil {
		return false, err
	}
	if !admin {
		return false, nil
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		zap.L().Error("resolve user by email failed", zap.String("email", req.Email), zap.Error(err))
		return false, errorx.ErrServerBusy
	}
	if user == nil {
		return false, nil
	}

	membership := model.UserFamilyRole{
		UserId:       user.Id,
		FamilyId:     req.FamilyId,
		FamilyRoleId: req.FamilyRoleId,
	}
	return s.repos.Family.SetUserFamilyRole(&membership)
}

// GetFamilyMembershipsForActiveUser lists the caller's memberships with
// the profile resolved per row.
func (s *familyService) GetFamilyMembershipsForActiveUser(ctx context.Context, callerId uint64) (*respond.FamilyMemberListRespond, error) {
	memberships, err := s.repos.Family.GetFamilyMemberRolesForUser(callerId)
	if err != nil {
		return nil, err
	}
	return s.resolveMembers(ctx, memberships)
}

// GetFamilyMembers lists one family's members. Nil when the caller does
// not belong to the family, which the transport reports as 404.
func (s *familyService) GetFamilyMembers(ctx context.Context, callerId, familyId uint64) (*respond.FamilyMemberListRespond, error) {
	memberships, err := s.repos.Family.GetFamilyMemberRolesForFamily(familyId)
	if err != nil {
		return nil, err
	}

	callerIsMember := false
	for _, m := range memberships {
		if m.UserId == callerId {
			callerIsMember = true
			break
		}
	}
	if !callerIsMember {
		return nil, nil
	}
	return s.resolveMembers(ctx, memberships)
}

// resolveMembers maps membership rows to DTOs, fetching each member's
// profile from the user service. Rows whose user has vanished from the
// user service are skipped with a warning.
func (s *familyService) resolveMembers(ctx context.Context, memberships []model.UserFamilyRole) (*respond.FamilyMemberListRespond, error) {
	items := make([]respond.FamilyMemberRespond, 0, len(memberships))
	for _, m := range memberships {
		user, err := s.users.GetUserById(ctx, m.UserId)
		if err != nil {
			zap.L().Error("resolve member failed", zap.Uint64("userId", m.UserId), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		if user == nil {
			zap.L().Warn("membership references unknown user", zap.Uint64("userId", m.UserId), zap.Uint64("familyId", m.FamilyId))
			continue
		}
		items = append(items, respond.FamilyMemberRespond{
			User: respond.UserRespond{
				Id:        user.Id,
				Email:     user.Email,
				FirstName: user.FirstName,
				LastName:  user.LastName,
			},
			Family: respond.FamilyRespond{
				Id:        m.Family.Id,
				Name:      m.Family.Name,
				FounderId: m.Family.FounderId,
			},
			FamilyRole: respond.FamilyRoleRespond{
				Id:   m.FamilyRole.Id,
				Name: m.FamilyRole.Name,
			},
		})
	}
	return &respond.FamilyMemberListRespond{
		Count: len(items),
		Items: items,
	}, nil
}

// isFamilyAdmin is the one authorization predicate shared by the
// destructive operations: the caller must hold MainAdministrator in the
// target family. No membership row means unauthorized.
func (s *familyService) isFamilyAdmin(callerId, familyId uint64) (bool, error) {
	memberships, err := s.repos.Family.GetFamilyMemberRolesForUser(callerId)
	if err != nil {
		return false, err
	}
	for _, m := range memberships {
		if m.FamilyId == familyId {
			return m.FamilyRoleId == family_role_enum.MainAdministrator, nil
		}
	}
	return false, nil
}
