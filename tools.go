//go:build tools
// +build tools

// Package tools tracks Go-based tools invoked through go generate (mockgen)
// so they stay pinned in go.mod.
package simplemeet

import (
	_ "go.uber.org/mock/mockgen"
)
