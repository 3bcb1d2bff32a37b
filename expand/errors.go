package expand

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/optimod/model"
)

// ErrConnectorMismatch is the sentinel wrapped by every MismatchError.
// Match with errors.Is; inspect details with errors.As on *MismatchError.
var ErrConnectorMismatch = errors.New("expand: connector mismatch")

// ErrNoAggregator indicates a connector declared an extensive field type for
// which no rule was registered. This is a configuration error: the model
// cannot be transformed until the registration is added.
var ErrNoAggregator = errors.New("expand: no aggregator registered for extensive type")

// ErrNilModel indicates a nil model block was passed to a transformation.
var ErrNilModel = errors.New("expand: model is nil")

// MismatchError reports a structural inconsistency between a connector and
// the reference connector of its equivalence class. It always wraps
// ErrConnectorMismatch.
type MismatchError struct {
	// Field is the offending field name.
	Field string
	// Reference is the connector that established the canonical field.
	Reference *model.Connector
	// Offender is the connector that disagrees with the canonical field.
	Offender *model.Connector
	// Detail is the human-readable explanation (shape, index count, …).
	Detail string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: variable %q %s (reference connector %q, connector %q)",
		ErrConnectorMismatch, e.Field, e.Detail, e.Reference.Name(), e.Offender.Name())
}

// Unwrap makes errors.Is(err, ErrConnectorMismatch) hold.
func (e *MismatchError) Unwrap() error { return ErrConnectorMismatch }
