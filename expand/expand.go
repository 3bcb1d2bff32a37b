package expand

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/optimod/logger"
	"github.com/katalvlaran/optimod/model"
)

// Options configures a transformation run.
// Use DefaultOptions() and apply Option functions on top.
type Options struct {
	// Log receives the transformation's warnings and debug traces.
	Log zerolog.Logger
}

// DefaultOptions returns the default configuration (global logger).
func DefaultOptions() Options {
	return Options{Log: logger.Logger()}
}

// Option mutates Options before a transformation run.
type Option func(*Options)

// WithLogger overrides the logger for one transformation run.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Log = l }
}

// ExpandConnectors expands every connector referenced by active constraints
// and connections of m: equivalence classes are built over both component
// kinds, every class is validated and expanded, constraints are rewritten
// into "<name>.expanded" lists, connections into "<name>_expanded" blocks,
// and aggregator fields receive their implementing constraints.
//
// A model without connectors is returned unchanged. On error the model may
// be partially mutated (synthesized variables are not rolled back) and must
// not be reused without inspection.
func ExpandConnectors(m *model.Block, opts ...Option) error {
	if m == nil {
		return ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Log.With().Str("transform", "expand_connectors").Logger()

	// Nothing to do on connector-free models.
	if len(m.ComponentDataObjects(false, model.KindConnector)) == 0 {
		return nil
	}
	log.Debug().Msg("connectors found; expanding")

	coll := collect(m, model.KindConstraint, model.KindConnection)
	if err := validateAll(coll, log); err != nil {
		return err
	}
	if err := expandConstraints(coll); err != nil {
		return err
	}
	acc := newEvarLog()
	if err := buildConnections(coll, acc); err != nil {
		return err
	}

	return implementAggregators(coll)
}

// ExpandConnections expands every connection of m: equivalence classes are
// built over connections only (constraint bodies are not scanned), classes
// are validated and expanded, connections are rewritten into "<name>_expanded"
// blocks, and the aggregator and extensive implementation passes run.
//
// The same no-rollback caveat as ExpandConnectors applies.
func ExpandConnections(m *model.Block, opts ...Option) error {
	if m == nil {
		return ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Log.With().Str("transform", "expand_connections").Logger()

	coll := collect(m, model.KindConnection)
	if err := validateAll(coll, log); err != nil {
		return err
	}
	acc := newEvarLog()
	if err := buildConnections(coll, acc); err != nil {
		return err
	}
	if err := implementAggregators(coll); err != nil {
		return err
	}

	return implementExtensives(coll, acc)
}

// validateAll validates and expands every class in group-ID order, caching
// the canonical references for the rewrite passes.
func validateAll(coll *collection, log zerolog.Logger) error {
	for _, cl := range coll.classes {
		ref, err := validateAndExpand(cl, log)
		if err != nil {
			return fmt.Errorf("matched set %d: %w", cl.id, err)
		}
		coll.refs[cl] = ref
	}

	return nil
}
