package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultFrom = 0
	defaultSize = 10
)

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// parseListQuery reads the state, from, and size query parameters of a
// booking list request, applying defaults for absent values.
func parseListQuery(c *gin.Context) (state string, from, size int, err error) {
	state = c.DefaultQuery("state", "ALL")
	from, size, err = parsePagination(c)
	return state, from, size, err
}

func parsePagination(c *gin.Context) (from, size int, err error) {
	from, err = strconv.Atoi(c.DefaultQuery("from", strconv.Itoa(defaultFrom)))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid from")
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size")
	}
	return from, size, nil
}
