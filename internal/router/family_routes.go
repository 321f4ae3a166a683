package router

import (
	"midas_family_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterFamilyRoutes registers the family API. Every route requires a
// bearer token; the route names mirror the public API contract.
func (rt *Router) RegisterFamilyRoutes(rg *gin.RouterGroup) {
	familyGroup := rg.Group("/family")
	familyGroup.Use(middleware.JWTAuth())
	{
		familyGroup.POST("/Add", rt.handlers.Family.AddNewFamily)
		familyGroup.DELETE("/Delete", rt.handlers.Family.DeleteFamily)

		familyGroup.POST("/Add/User", rt.handlers.Family.AddUserToFamily)
		familyGroup.DELETE("/Delete/User", rt.handlers.Family.DeleteUserFromFamily)
		familyGroup.PATCH("/Set/UserRole", rt.handlers.Family.SetUserFamilyRole)

		familyGroup.GET("/FamilyMembers", rt.handlers.Family.GetFamilyMembershipsForActiveUser)
		familyGroup.GET("/Members", rt.handlers.Family.GetFamilyMembers)
	}
}
