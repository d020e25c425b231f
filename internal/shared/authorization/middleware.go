package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/shared/constants"
)

// RequireCapability aborts the request unless the authenticated helper's
// role grants the capability.
func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseRole(c.GetString(constants.ContextKeyUserRole))
		if !role.Has(cap) {
			c.JSON(403, gin.H{
				"error": string(cap) + " access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireModerator is shorthand for RequireCapability(CapabilityModerate).
func RequireModerator() gin.HandlerFunc {
	return RequireCapability(CapabilityModerate)
}

// RequireAdmin is shorthand for RequireCapability(CapabilityAdminister).
func RequireAdmin() gin.HandlerFunc {
	return RequireCapability(CapabilityAdminister)
}

type OwnedResource interface {
	GetOwnerID() string
}

// CanAccessResource allows moderators through and otherwise checks ownership.
func CanAccessResource(userID string, role Role, resource OwnedResource) bool {
	if role.CanModerate() {
		return true
	}
	return userID == resource.GetOwnerID()
}

func CanAccessResourceByOwnerID(userID string, role Role, resourceOwnerID string) bool {
	if role.CanModerate() {
		return true
	}
	return userID == resourceOwnerID
}
