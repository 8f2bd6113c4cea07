package middleware

import (
	"net/http"

	"timeshare_manager/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware that requires any of the allowed roles
func RoleMiddleware(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, exists := c.Get(AuthRolesKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Roles not found in token, ensure JWT middleware runs first"})
			return
		}

		userRoles, ok := rolesVal.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid roles type in token"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			for _, userRole := range userRoles {
				if userRole == string(allowedRole) {
					isAllowed = true
					break
				}
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware allows admins and owners
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin, model.RoleOwner)
}

// StaffMiddleware allows staff in addition to admins and owners
func StaffMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleStaff, model.RoleAdmin, model.RoleOwner)
}

// OwnerMiddleware allows only owners
func OwnerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleOwner)
}
