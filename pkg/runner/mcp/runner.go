package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/datekeeper/pkg/store"
)

// Runner coordinates MCP server startup over stdio.
type Runner struct {
	Persistence store.Persistence
	Name        string
	Version     string
}

// NewServer builds the MCP server with every tool and resource registered.
func NewServer(name, version string, svc *Service) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read, add and organize important dates and see how many days remain until each one."),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do serves until stdin closes.
func (r Runner) Do(_ context.Context) error {
	if r.Persistence == nil {
		return errors.New("mcp runner requires persistence")
	}
	name := r.Name
	if name == "" {
		name = "datekeeper"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := NewServer(name, version, NewService(r.Persistence))
	return server.ServeStdio(srv)
}
