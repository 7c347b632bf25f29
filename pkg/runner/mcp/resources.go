package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDatesResource(srv, svc)
	registerCategoriesResource(srv, svc)
	registerDateTemplate(srv, svc)
}

func registerDatesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"datekeeper://dates",
		"Dates",
		mcp.WithResourceDescription("Every important date, past and upcoming, with days remaining."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		listing, err := svc.ListDates(ctx, ListOptions{All: true})
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, listing)
	})
}

func registerCategoriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"datekeeper://categories",
		"Categories",
		mcp.WithResourceDescription("Categories with their color and number of dates."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		all, err := svc.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"categories": all,
			"count":      len(all),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDateTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"datekeeper://dates/{name}",
		"Date Details",
		mcp.WithTemplateDescription("A single important date by name."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments, "name")
		if name == "" {
			return nil, fmt.Errorf("date name is required")
		}

		dto, err := svc.DateByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"date": dto})
	})
}

// templateArg reads a URI template variable, which arrives either as a
// string or as a list of strings.
func templateArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
