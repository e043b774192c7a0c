package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions. Indexes are 1-based positions as shown by note_list and trash_list.

var addToolDef = mcp.NewTool("note_add",
	mcp.WithDescription("Add a note to the end of the active list. The date is stamped with the current local time."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
	mcp.WithString("content", mcp.Description("Note body, may be empty")),
	mcp.WithString("category", mcp.Description(`Category label (default: "General")`)),
)

var listToolDef = mcp.NewTool("note_list",
	mcp.WithDescription("List active notes in stored order with their 1-based indexes."),
)

var peekToolDef = mcp.NewTool("note_peek",
	mcp.WithDescription("Show one active note by index."),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based position in the active list")),
)

var searchToolDef = mcp.NewTool("note_search",
	mcp.WithDescription("Case-insensitive search over active note titles and contents. Results keep active order and carry their current indexes."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Text to look for; empty matches every note")),
	mcp.WithBoolean("fuzzy", mcp.Description("Match characters in order instead of a contiguous substring")),
)

var deleteToolDef = mcp.NewTool("note_delete",
	mcp.WithDescription("Move an active note to the end of the trash. Later notes shift down by one."),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based position in the active list")),
)

var trashListToolDef = mcp.NewTool("trash_list",
	mcp.WithDescription("List trashed notes in the order they were deleted."),
)

var recoverToolDef = mcp.NewTool("trash_recover",
	mcp.WithDescription("Move a trashed note back to the end of the active list."),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based position in the trash")),
)

var burnToolDef = mcp.NewTool("trash_burn",
	mcp.WithDescription("Permanently destroy one trashed note."),
	mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based position in the trash")),
)

var incinerateToolDef = mcp.NewTool("trash_incinerate",
	mcp.WithDescription("Permanently destroy every trashed note. Nothing happens unless confirm is true."),
	mcp.WithBoolean("confirm", mcp.Required(), mcp.Description("Must be true to empty the trash")),
)

var exportToolDef = mcp.NewTool("note_export",
	mcp.WithDescription("Export the active notes or the trash to a JSONL or HTML file. The note files are not modified."),
	mcp.WithString("path", mcp.Description("Output file (default: <export_dir>/<collection>-<ulid>.<format>)")),
	mcp.WithString("format", mcp.Description(`"jsonl" (default) or "html"`)),
	mcp.WithString("collection", mcp.Description(`"active" (default) or "trash"`)),
)
