package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/zotter/internal/config"
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/logger"
	"github.com/hpungsan/zotter/internal/ops"
	"github.com/hpungsan/zotter/internal/storage"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store *storage.Store
	cfg   *config.Config
	log   *logger.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *storage.Store, cfg *config.Config, log *logger.Logger) *Handlers {
	if log == nil {
		log = logger.Nop()
	}
	return &Handlers{store: store, cfg: cfg, log: log.WithComponent("mcp")}
}

// Request types for each tool

// AddRequest represents the arguments for note_add.
type AddRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
}

// IndexRequest represents the arguments for tools addressing a single note.
type IndexRequest struct {
	Index int `json:"index"`
}

// SearchRequest represents the arguments for note_search.
type SearchRequest struct {
	Query string `json:"query"`
	Fuzzy bool   `json:"fuzzy,omitempty"`
}

// IncinerateRequest represents the arguments for trash_incinerate.
type IncinerateRequest struct {
	Confirm bool `json:"confirm"`
}

// ExportRequest represents the arguments for note_export.
type ExportRequest struct {
	Path       string `json:"path,omitempty"`
	Format     string `json:"format,omitempty"`
	Collection string `json:"collection,omitempty"`
}

// Handler implementations

// HandleAdd handles the note_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Title == "" {
		return errorResult(errors.NewInvalidRequest("title is required")), nil
	}

	result, err := ops.Add(h.store, ops.AddInput{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		return h.fail("note_add", err), nil
	}

	return successResult(result)
}

// HandleList handles the note_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.List(h.store)
	if err != nil {
		return h.fail("note_list", err), nil
	}
	return successResult(result)
}

// HandlePeek handles the note_peek tool call.
func (h *Handlers) HandlePeek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IndexRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Peek(h.store, ops.PeekInput{Index: input.Index})
	if err != nil {
		return h.fail("note_peek", err), nil
	}
	return successResult(result)
}

// HandleSearch handles the note_search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Search(h.store, ops.SearchInput{Query: input.Query, Fuzzy: input.Fuzzy})
	if err != nil {
		return h.fail("note_search", err), nil
	}
	return successResult(result)
}

// HandleDelete handles the note_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IndexRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.store, ops.DeleteInput{Index: input.Index})
	if err != nil {
		return h.fail("note_delete", err), nil
	}
	return successResult(result)
}

// HandleTrashList handles the trash_list tool call.
func (h *Handlers) HandleTrashList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Trash(h.store)
	if err != nil {
		return h.fail("trash_list", err), nil
	}
	return successResult(result)
}

// HandleRecover handles the trash_recover tool call.
func (h *Handlers) HandleRecover(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IndexRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Recover(h.store, ops.RecoverInput{Index: input.Index})
	if err != nil {
		return h.fail("trash_recover", err), nil
	}
	return successResult(result)
}

// HandleBurn handles the trash_burn tool call.
func (h *Handlers) HandleBurn(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IndexRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Burn(h.store, ops.BurnInput{Index: input.Index})
	if err != nil {
		return h.fail("trash_burn", err), nil
	}
	return successResult(result)
}

// HandleIncinerate handles the trash_incinerate tool call.
// The confirm argument stands in for the interactive prompt.
func (h *Handlers) HandleIncinerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IncinerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Incinerate(h.store, ops.IncinerateInput{
		Confirm: func() (bool, error) { return input.Confirm, nil },
	})
	if err != nil {
		return h.fail("trash_incinerate", err), nil
	}
	return successResult(result)
}

// HandleExport handles the note_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.store, h.cfg, ops.ExportInput{
		Path:       input.Path,
		Format:     ops.ExportFormat(input.Format),
		Collection: input.Collection,
	})
	if err != nil {
		return h.fail("note_export", err), nil
	}
	return successResult(result)
}

// fail logs internal failures before converting them to a tool result.
func (h *Handlers) fail(tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, errors.ErrInternal) {
		h.log.Error().Err(err).Str("tool", tool).Msg("tool call failed")
	}
	return errorResult(err)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var zErr *errors.ZotterError
	if stderrors.As(err, &zErr) {
		errorObj := map[string]any{
			"code":    zErr.Code,
			"message": zErr.Message,
		}
		if zErr.Code != errors.ErrInternal && zErr.Details != nil {
			errorObj["details"] = zErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
