// SPDX-License-Identifier: MIT

// Package fixture loads named float64 matrices from YAML, TOML or JSON files.
//
// A document holds a list of matrices, each with a name, nested rows and an
// optional tolerance:
//
//	matrices:
//	  - name: swap
//	    rows: [[0, 1], [1, 0]]
//	  - name: tight
//	    epsilon: 1e-9
//	    rows: [[2, 1], [7, 4]]
//
// The format is chosen from the file extension (.yaml/.yml, .toml, .json) or
// passed explicitly to Parse. Rows follow sparse.FromRows: the first row fixes
// the column count, longer rows are truncated and shorter ones zero-padded.
package fixture
