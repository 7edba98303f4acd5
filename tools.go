//go:build tools

// Package tools pins the development tool versions used by Taskfile and CI.
package tools

import (
	_ "github.com/go-task/task/v3/cmd/task"
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
