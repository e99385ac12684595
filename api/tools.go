//go:build tools

// This file pins the code generator invoked by generate.go so that
// `go run` resolves it from go.mod.

package api

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
)
