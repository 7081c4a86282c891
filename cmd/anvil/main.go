// Command anvil runs a single tool invocation and prints its output.
//
// Usage:
//
//	anvil -tool fsWrite -args '{"command":"create","path":"/tmp/x","content":"hi"}'
//	anvil -tool ls -args '{"path":".","depth":1}'
//
// Flags:
//
//	-tool string    Tool name: a built-in name or server___tool for MCP tools
//	-args string    Tool arguments as a JSON object (default {})
//	-config string  Path to the config file (default ~/.anvil/config.toml)
//	-debug          Log at debug level
//	-specs          Print the built-in tool specs and exit
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/builtin"
	"github.com/fwojciec/anvil/config"
	"github.com/fwojciec/anvil/shell"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "anvil: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		toolFlag   = flag.String("tool", "", "Tool name: a built-in name or server___tool for MCP tools")
		argsFlag   = flag.String("args", "{}", "Tool arguments as a JSON object")
		configFlag = flag.String("config", "", "Path to the config file")
		debugFlag  = flag.Bool("debug", false, "Log at debug level")
		specsFlag  = flag.Bool("specs", false, "Print the built-in tool specs and exit")
	)
	flag.Parse()

	if *specsFlag {
		return printSpecs(os.Stdout)
	}
	if *toolFlag == "" {
		return fmt.Errorf("the -tool flag is required")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Shell != "" {
		if err := os.Setenv(shell.ShellEnvVar, cfg.Shell); err != nil {
			return err
		}
	}
	expanded := cfg.Env
	shell.ExpandEnv(expanded, os.LookupEnv)
	for k, v := range expanded {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	logger, closeLog, err := initLogger(*debugFlag, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	name, err := parseToolName(*toolFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	executor := builtin.NewExecutor(builtin.WithLogger(logger))
	out, err := executor.Dispatch(ctx, name, json.RawMessage(*argsFlag))
	if err != nil {
		return err
	}
	printOutput(os.Stdout, out)
	return nil
}

// parseToolName resolves the -tool flag: server___tool addresses an MCP
// tool, anything else must be a built-in name.
func parseToolName(s string) (anvil.CanonicalToolName, error) {
	if server, tool, ok := strings.Cut(s, "___"); ok {
		if server == "" || tool == "" {
			return anvil.CanonicalToolName{}, fmt.Errorf("malformed MCP tool name %q", s)
		}
		return anvil.MCP(server, tool), nil
	}
	name := anvil.BuiltInToolName(s)
	if !name.Valid() {
		return anvil.CanonicalToolName{}, fmt.Errorf("unknown tool %q", s)
	}
	return anvil.BuiltIn(name), nil
}

func initLogger(debug bool, level, logFile string) (zerolog.Logger, func(), error) {
	noop := func() {}

	lvl := zerolog.InfoLevel
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	var output io.Writer = io.Discard
	closeLog := noop
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("opening log file: %w", err)
		}
		output = file
		closeLog = func() { file.Close() }
	} else if debug {
		output = os.Stderr
	}

	logger := zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	return logger, closeLog, nil
}

func printSpecs(w io.Writer) error {
	type specJSON struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		InputSchema json.RawMessage `json:"inputSchema"`
	}
	specs := make([]specJSON, 0, len(anvil.BuiltInToolNames()))
	for _, name := range anvil.BuiltInToolNames() {
		s := builtin.SpecFor(name)
		specs = append(specs, specJSON{Name: s.Name, Description: s.Description, InputSchema: s.InputSchema})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(specs)
}

func printOutput(w io.Writer, out anvil.ToolExecutionOutput) {
	for _, item := range out.Items {
		switch it := item.(type) {
		case anvil.TextItem:
			fmt.Fprintln(w, it.Text)
		case anvil.JSONItem:
			fmt.Fprintln(w, string(it.Value))
		case anvil.ImageItem:
			fmt.Fprintf(w, "[%s image, %d bytes]\n", it.Image.Format, len(it.Image.Data))
		}
	}
}
