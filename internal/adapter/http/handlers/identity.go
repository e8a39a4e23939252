package handlers

import "github.com/gin-gonic/gin"

// UserIDKey is where the identity middleware stores the authenticated user id
// on the request context.
const UserIDKey = "user_id"

func userID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
