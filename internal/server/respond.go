package server

import "github.com/gin-gonic/gin"

// fail writes the error body for a request. Internal detail is echoed only
// in development; clients otherwise see just the generic message.
func (s *Server) fail(c *gin.Context, status int, message string, err error) {
	body := gin.H{"error": message}
	if err != nil && s.cfg.IsDevelopment() {
		body["detail"] = err.Error()
	}
	c.JSON(status, body)
}
