// SPDX-License-Identifier: MIT

package fixture

import "errors"

var (
	// ErrUnsupportedFormat indicates an unknown file extension or Format value.
	ErrUnsupportedFormat = errors.New("fixture: unsupported format")

	// ErrFixtureNotFound indicates a lookup of a name absent from the set.
	ErrFixtureNotFound = errors.New("fixture: not found")

	// ErrEmptyFixture indicates a document without matrices or a matrix without rows.
	ErrEmptyFixture = errors.New("fixture: empty fixture")

	// ErrUnnamedFixture indicates a matrix entry without a name.
	ErrUnnamedFixture = errors.New("fixture: missing name")

	// ErrDuplicateFixture indicates two entries sharing a name.
	ErrDuplicateFixture = errors.New("fixture: duplicate name")

	// ErrInvalidEpsilon indicates a negative or non-finite tolerance.
	ErrInvalidEpsilon = errors.New("fixture: epsilon must be finite, non-negative")
)
