package middleware

import "github.com/gin-gonic/gin"

const (
	memberIDKey    = contextKey("memberID")
	loginIDKey     = contextKey("loginID")
	accessTokenKey = contextKey("accessToken")
)

// GetMemberIDFromContext retrieves the authenticated member ID from the request context.
// It returns the member ID and a boolean indicating if it was found.
func GetMemberIDFromContext(c *gin.Context) (string, bool) {
	memberID, ok := c.Request.Context().Value(memberIDKey).(string)
	if !ok || memberID == "" {
		return "", false
	}
	return memberID, true
}

// GetLoginIDFromContext retrieves the login id carried by the access token.
func GetLoginIDFromContext(c *gin.Context) (string, bool) {
	loginID, ok := c.Request.Context().Value(loginIDKey).(string)
	if !ok || loginID == "" {
		return "", false
	}
	return loginID, true
}

// GetAccessTokenFromContext returns the raw access token the request authenticated with.
func GetAccessTokenFromContext(c *gin.Context) string {
	token, _ := c.Request.Context().Value(accessTokenKey).(string)
	return token
}
