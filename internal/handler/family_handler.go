package handler

import (
	"net/http"

	"midas_family_server/internal/dto/request"
	"midas_family_server/internal/infrastructure/middleware"
	"midas_family_server/internal/service"
	"midas_family_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// FamilyHandler serves the family API.
type FamilyHandler struct {
	familySvc service.FamilyService
}

// NewFamilyHandler creates a family handler instance.
func NewFamilyHandler(familySvc service.FamilyService) *FamilyHandler {
	return &FamilyHandler{familySvc: familySvc}
}

// AddNewFamily creates a family.
// POST /api/family/Add
func (h *FamilyHandler) AddNewFamily(c *gin.Context) {
	var req request.AddFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.familySvc.AddNewFamily(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteFamily deletes a family, MainAdministrator callers only.
// DELETE /api/family/Delete?id=
func (h *FamilyHandler) DeleteFamily(c *gin.Context) {
	var req request.DeleteFamilyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	callerId, ok := middleware.CallerUserId(c)
	if !ok {
		handleMissingCaller(c)
		return
	}
	deleted, err := h.familySvc.DeleteFamily(c.Request.Context(), callerId, req.Id)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !deleted {
		HandleNotFound(c)
		return
	}
	HandleSuccess(c, nil)
}

// AddUserToFamily adds a member identified by email.
// POST /api/family/Add/User
func (h *FamilyHandler) AddUserToFamily(c *gin.Context) {
	var req request.AddUserToFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	added, err := h.familySvc.AddUserToFamily(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !added {
		HandleNotFound(c)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteUserFromFamily removes a member, MainAdministrator callers only.
// DELETE /api/family/Delete/User
func (h *FamilyHandler) DeleteUserFromFamily(c *gin.Context) {
	var req request.DeleteUserFromFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	callerId, ok := middleware.CallerUserId(c)
	if !ok {
		handleMissingCaller(c)
		return
	}
	deleted, err := h.familySvc.DeleteUserFromFamily(c.Request.Context(), callerId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !deleted {
		HandleNotFound(c)
		return
	}
	HandleSuccess(c, nil)
}

// SetUserFamilyRole changes a member's role, MainAdministrator callers
// only.
// PATCH /api/family/Set/UserRole
func (h *FamilyHandler) SetUserFamilyRole(c *gin.Context) {
	var req request.SetUserFamilyRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	callerId, ok := middleware.CallerUserId(c)
	if !ok {
		handleMissingCaller(c)
		return
	}
	set, err := h.familySvc.SetUserFamilyRole(c.Request.Context(), callerId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !set {
		HandleNotFound(c)
		return
	}
	HandleSuccess(c, nil)
}

// GetFamilyMembershipsForActiveUser lists the caller's memberships.
// GET /api/family/FamilyMembers
func (h *FamilyHandler) GetFamilyMembershipsForActiveUser(c *gin.Context) {
	callerId, ok := middleware.CallerUserId(c)
	if !ok {
		handleMissingCaller(c)
		return
	}
	data, err := h.familySvc.GetFamilyMembershipsForActiveUser(c.Request.Context(), callerId)
	if err != nil {
		HandleError(c, err)
		return
	}
	if data == nil {
		HandleNotFound(c)
		return
	}
	HandleSuccess(c, data)
}

// GetFamilyMembers lists one family's members, visible to its members.
// GET /api/family/Members?family_id=
func (h *FamilyHandler) GetFamilyMembers(c *gin.Context) {
	var req request.GetFamilyMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	callerId, ok := middleware.CallerUserId(c)
	if !ok {
		handleMissingCaller(c)
		return
	}
	data, err := h.familySvc.GetFamilyMembers(c.Request.Context(), callerId, req.FamilyId)
	if err != nil {
		HandleError(c, err)
		return
	}
	if data == nil {
		HandleNotFound(c)
		return
	}
	HandleSuccess(c, data)
}

// handleMissingCaller fires when a route forgot the JWT middleware.
func handleMissingCaller(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  "caller identity missing",
	})
}
