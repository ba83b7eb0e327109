package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gbalekage/my-pos-v2-sub000/service"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

// currentUserID normalizes the user_id set by the auth middleware. JWT map
// claims come back as float64; tests set uint directly.
func currentUserID(c *gin.Context) (uint, error) {
	raw, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("no authenticated user")
	}
	switch v := raw.(type) {
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	case int64:
		return uint(v), nil
	case float64:
		return uint(v), nil
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n), nil
		}
	}
	return 0, errors.New("invalid user_id claim")
}

func failService(c *gin.Context, err error, message string) {
	utils.Error(c, service.HTTPStatus(err), message, err)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		utils.Error(c, 400, "invalid "+name, nil)
		return 0, false
	}
	return uint(n), true
}
