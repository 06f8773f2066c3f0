// Package fixture generates the labeled 2D point datasets used as fixed
// inputs by the ML test suite.
//
// Each dataset ("mode") is written to <dir>/<mode>.csv as a space-delimited
// table with the header "Index X Y Type". All modes requested from one
// Generator draw from a single seeded random stream, in order, so the same
// seed and the same mode list always reproduce the same bytes.
package fixture
