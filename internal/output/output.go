// Package output defines where finished classification reports go.
package output

import (
	"context"

	"github.com/sornchai/winnow/internal/model"
)

// Output is a destination for classification reports. The report is
// serialized verbatim — shaping belongs to the core, not the destination.
type Output interface {
	Write(ctx context.Context, report model.Report) error
	Close() error
}
