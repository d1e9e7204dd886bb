package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/ops"
	"github.com/hpungsan/sift/internal/store"
	"github.com/hpungsan/sift/internal/web"
)

// maxStdinBytes caps values piped to create.
const maxStdinBytes = 1 << 20

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st store.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "sift",
		Usage:   "String analysis store",
		Version: Version,
		Commands: []*cli.Command{
			createCmd(st, cfg),
			fetchCmd(st),
			deleteCmd(st),
			listCmd(st),
			queryCmd(st),
			serveCmd(st, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// createCmd creates the create command.
func createCmd(st store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Analyze and store a string (argument or stdin)",
		ArgsUsage: "[value]",
		Action: func(c *cli.Context) error {
			var value string
			switch {
			case c.NArg() > 0:
				value = c.Args().First()
			case stdinHasData():
				text, err := readStdin(maxStdinBytes)
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				value = text
			default:
				return outputError(errors.NewInvalidRequest("value must be given as an argument or piped via stdin"))
			}

			rec, err := ops.Create(c.Context, st, cfg, ops.CreateInput{Value: &value})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(rec)
		},
	}
}

// fetchCmd creates the fetch command.
func fetchCmd(st store.Store) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch the analysis of a stored string",
		ArgsUsage: "<value>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("value is required"))
			}

			rec, err := ops.Fetch(c.Context, st, ops.FetchInput{Value: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(rec)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(st store.Store) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a stored string",
		ArgsUsage: "<value>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("value is required"))
			}

			out, err := ops.Delete(c.Context, st, ops.DeleteInput{Value: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(out)
		},
	}
}

// listCmd creates the list command.
func listCmd(st store.Store) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored strings matching filters",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "palindrome", Aliases: []string{"p"}, Usage: "Only palindromes (--palindrome=false for non-palindromes)"},
			&cli.IntFlag{Name: "min-length", Usage: "Minimum length in characters"},
			&cli.IntFlag{Name: "max-length", Usage: "Maximum length in characters"},
			&cli.IntFlag{Name: "word-count", Aliases: []string{"w"}, Usage: "Exact word count"},
			&cli.StringFlag{Name: "contains", Aliases: []string{"c"}, Usage: "Character the string must contain"},
		},
		Action: func(c *cli.Context) error {
			out, err := ops.List(c.Context, st, ops.ListInput{Filters: listFilters(c)})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(out)
		},
	}
}

// listFilters maps the flags the user actually set onto a filter.Spec.
func listFilters(c *cli.Context) filter.Spec {
	spec := filter.Spec{}
	if c.IsSet("palindrome") {
		spec[filter.KeyIsPalindrome] = c.Bool("palindrome")
	}
	if c.IsSet("min-length") {
		spec[filter.KeyMinLength] = c.Int("min-length")
	}
	if c.IsSet("max-length") {
		spec[filter.KeyMaxLength] = c.Int("max-length")
	}
	if c.IsSet("word-count") {
		spec[filter.KeyWordCount] = c.Int("word-count")
	}
	if c.IsSet("contains") {
		spec[filter.KeyContainsCharacter] = c.String("contains")
	}
	return spec
}

// queryCmd creates the query command.
func queryCmd(st store.Store) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Filter stored strings with a plain-English query",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			query := strings.Join(c.Args().Slice(), " ")

			out, err := ops.Query(c.Context, st, ops.QueryInput{Query: query})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(out)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(st store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Usage: "Address to listen on (overrides config)"},
			&cli.IntFlag{Name: "port", Usage: "Port to listen on (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			serveCfg := *cfg
			if c.IsSet("bind") {
				serveCfg.Bind = c.String("bind")
			}
			if c.IsSet("port") {
				serveCfg.Port = c.Int("port")
			}
			if err := serveCfg.Validate(); err != nil {
				return outputError(errors.NewInvalidRequest(err.Error()))
			}

			return web.Run(web.NewServer(st, &serveCfg, Version))
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	sErr := errors.As(err)
	return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads at most limit bytes from stdin and drops one trailing
// newline. Inner whitespace is part of the value and is kept.
func readStdin(limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(os.Stdin, limit+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("stdin exceeds %d bytes", limit)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
