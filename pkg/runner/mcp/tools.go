package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/timeutil"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddDateTool(srv, svc)
	registerRemoveDateTool(srv, svc)
	registerMoveDateTool(srv, svc)
	registerListDatesTool(srv, svc)
	registerNextDateTool(srv, svc)
	registerListCategoriesTool(srv, svc)
	registerAddCategoryTool(srv, svc)
	registerRecolorCategoryTool(srv, svc)
	registerRemoveCategoryTool(srv, svc)
}

func colorNames() []string {
	all := category.AllColors()
	out := make([]string, 0, len(all))
	for _, c := range all {
		out = append(out, c.String())
	}
	return out
}

func registerAddDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_date",
		mcp.WithDescription("Record a new important date."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Unique name of the date."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Calendar date as YYYY-MM-DD."),
		),
		mcp.WithString("description",
			mcp.Description("Optional free text."),
		),
		mcp.WithString("category",
			mcp.Description("Category name, created when missing. Defaults to General."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.AddDate(ctx, name, date,
			request.GetString("description", ""),
			request.GetString("category", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_date",
		mcp.WithDescription("Delete an important date by name."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the date to remove."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RemoveDate(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_date",
		mcp.WithDescription("File an important date under another category."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the date to move."),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Target category."),
		),
		mcp.WithBoolean("create",
			mcp.Description("Create the category when it does not exist."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cat, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.MoveDate(ctx, name, cat, request.GetBool("create", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListDatesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_dates",
		mcp.WithDescription("List important dates with the days remaining or elapsed."),
		mcp.WithBoolean("all",
			mcp.Description("Include dates that have already passed."),
		),
		mcp.WithString("category",
			mcp.Description("Only dates in this category."),
		),
		mcp.WithString("within",
			mcp.Description("Only dates at most this far away, such as 10d or 2w."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		within, _, err := timeutil.ParseWindow(request.GetString("within", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ListDates(ctx, ListOptions{
			All:      request.GetBool("all", false),
			Category: request.GetString("category", ""),
			Within:   within,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerNextDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"next_date",
		mcp.WithDescription("Return the date closest to today, past or future."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.NextDate(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List categories with their color and number of dates."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		all, err := svc.ListCategories(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"categories": all,
			"count":      len(all),
		})
	})
}

func registerAddCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_category",
		mcp.WithDescription("Create a category."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Unique category name."),
		),
		mcp.WithString("color",
			mcp.Description(fmt.Sprintf("One of %v or a #rrggbb value. Defaults to %s.", colorNames(), category.DefaultColor)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c, err := svc.AddCategory(ctx, name, request.GetString("color", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(c)
	})
}

func registerRecolorCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"recolor_category",
		mcp.WithDescription("Change the color of a category."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Category to change."),
		),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("One of %v or a #rrggbb value.", colorNames())),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		color, err := request.RequireString("color")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c, err := svc.RecolorCategory(ctx, name, color)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(c)
	})
}

func registerRemoveCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_category",
		mcp.WithDescription("Delete a category. Its dates must be moved to another category first or with move_to."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Category to remove."),
		),
		mcp.WithString("move_to",
			mcp.Description("Category that receives the dates of the removed one."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		moveTo := request.GetString("move_to", "")

		moved, err := svc.RemoveCategory(ctx, name, moveTo)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"removed": name,
			"moveTo":  moveTo,
			"moved":   moved,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
