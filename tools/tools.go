//go:build tools

// Package tools pins build tooling so go.mod tracks its version.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
