package handler

import (
	"strconv"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/middleware"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("invalid " + name)
	}
	return id, nil
}

// currentUser returns the caller id set by middleware.UserIdentity.
func currentUser(c *gin.Context) (int64, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, apperror.ErrMissingIdentity()
	}
	return id, nil
}

func pageParams(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
