package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gatehouse/internal/shared/utils"
)

// StaffIDHeader carries the acting staff member's ID. Authentication is
// handled upstream by the gateway; by the time a request reaches this
// service the header is trusted.
const StaffIDHeader = "X-Staff-ID"

const staffIDKey = "staff_id"

// RequireStaffActor rejects mutating review calls that arrive without an
// actor. Handlers read the ID back with StaffID.
func RequireStaffActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := c.GetHeader(StaffIDHeader)
		if staffID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing staff actor header")
			c.Abort()
			return
		}

		c.Set(staffIDKey, staffID)
		c.Next()
	}
}

// StaffID returns the actor set by RequireStaffActor, or "" when the route
// did not require one.
func StaffID(c *gin.Context) string {
	return c.GetString(staffIDKey)
}
