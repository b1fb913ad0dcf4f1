// Package vex is a small virtual-DOM runtime for Go. View trees are built
// by generated code (see cmd/vex and internal/vexgen), diffed against the
// previously rendered tree, and applied to a backend as a list of patches.
package vex
