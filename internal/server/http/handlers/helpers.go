package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/personauth/internal/domain/model"
	"github.com/polkiloo/personauth/internal/server/http/dto"
	"github.com/polkiloo/personauth/internal/server/http/middleware"
)

// CurrentRequestID extracts request identifier assigned by middleware.
func CurrentRequestID(c *gin.Context) string {
	return c.GetString(middleware.RequestIDContextKey)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func toPersonResponse(p model.Person) dto.PersonResponse {
	return dto.PersonResponse{ID: p.ID, Login: p.Login, Password: p.Password}
}
