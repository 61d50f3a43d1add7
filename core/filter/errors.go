package filter

import (
	"fmt"

	"github.com/asaidimu/go-sift/core/rows"
)

// UndefinedAttributeError reports that an object-shaped row lacks a
// requested attribute while undefined attributes are not being ignored.
// The whole filter call is aborted; no partial result is returned.
type UndefinedAttributeError struct {
	Attribute string
	RowID     rows.ID
}

func (e *UndefinedAttributeError) Error() string {
	return fmt.Sprintf("row %d has no attribute %q", e.RowID, e.Attribute)
}
