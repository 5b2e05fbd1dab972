//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through go generate on store/entity.go and
// directory/directory.go; importing it here keeps go.mod and go.sum in sync.
package chat_mapper

import (
	_ "go.uber.org/mock/mockgen"
)
