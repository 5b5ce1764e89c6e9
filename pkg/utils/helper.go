package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a route parameter to the bigserial key used by every
// table. IDs start at 1, so anything non-positive is rejected too.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id: %q", value)
	}
	return id, nil
}
