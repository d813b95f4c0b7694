package handler

import (
	"fmt"
	"strconv"

	"github.com/dugun-dev/dugun/internal/errors"
)

// parseIdParam parses an integer URL parameter and returns a 400 error with a
// meaningful message otherwise.
func parseIdParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, errors.BadRequest(fmt.Sprintf("invalid %s: must be an integer", paramName))
	}
	return val, nil
}
