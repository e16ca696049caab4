package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tahfidz-api/internal/middleware"
	"github.com/noah-isme/tahfidz-api/internal/service"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
	"github.com/noah-isme/tahfidz-api/pkg/response"
)

func actorFromContext(c *gin.Context) string {
	return middleware.ActorFrom(c)
}

func dateRangeFromQuery(c *gin.Context) (service.DateRange, bool) {
	r, err := service.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return service.DateRange{}, false
	}
	return r, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return false
	}
	return true
}
