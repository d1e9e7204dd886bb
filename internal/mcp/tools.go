package mcp

import "github.com/mark3labs/mcp-go/mcp"

var createToolDef = mcp.NewTool("string_create",
	mcp.WithDescription("Analyze a string and store the result. Fails if the exact string is already stored."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The string to analyze (non-empty)"),
	),
)

var fetchToolDef = mcp.NewTool("string_fetch",
	mcp.WithDescription("Fetch the stored analysis of a string by its exact value."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The exact string to look up (case-sensitive)"),
	),
)

var deleteToolDef = mcp.NewTool("string_delete",
	mcp.WithDescription("Delete a stored string by its exact value."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The exact string to delete (case-sensitive)"),
	),
)

var listToolDef = mcp.NewTool("string_list",
	mcp.WithDescription("List stored strings matching every given filter, oldest first. Omit all filters to list everything."),
	mcp.WithBoolean("is_palindrome",
		mcp.Description("Keep palindromes (true) or non-palindromes (false)"),
	),
	mcp.WithNumber("min_length",
		mcp.Description("Minimum length in characters (inclusive)"),
	),
	mcp.WithNumber("max_length",
		mcp.Description("Maximum length in characters (inclusive)"),
	),
	mcp.WithNumber("word_count",
		mcp.Description("Exact number of whitespace-separated words"),
	),
	mcp.WithString("contains_character",
		mcp.Description("A single character the string must contain (case-sensitive)"),
	),
)

var queryToolDef = mcp.NewTool("string_query",
	mcp.WithDescription("Filter stored strings with a plain-English query such as \"single word palindromic strings\" or \"strings longer than 10 characters containing the letter z\"."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural-language description of the strings to find"),
	),
)
