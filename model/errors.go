// Package model: sentinel error set.
//
// All public operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX) at outer boundaries); tests match them via
// errors.Is. Public methods never panic on user-triggered conditions.
package model

import "errors"

var (
	// ErrEmptyName indicates that a component was registered under an empty name.
	ErrEmptyName = errors.New("model: component name is empty")

	// ErrNilComponent indicates that a nil component was passed to AddComponent.
	ErrNilComponent = errors.New("model: component is nil")

	// ErrDuplicateComponent indicates that a component name is already taken
	// on the target block.
	ErrDuplicateComponent = errors.New("model: duplicate component name")

	// ErrNotIndexed indicates an index operation on a scalar variable.
	ErrNotIndexed = errors.New("model: variable is not indexed")

	// ErrBadIndex indicates an index label outside the variable's index set.
	ErrBadIndex = errors.New("model: index not in index set")

	// ErrNotList indicates an Add call on a variable that is not a list variable.
	ErrNotList = errors.New("model: variable is not a list variable")
)
