package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/roivaz/mcp-echo-server/internal/config"
	"github.com/roivaz/mcp-echo-server/internal/logging"
	"github.com/roivaz/mcp-echo-server/internal/probe"
)

var expectedTools = []string{"echo", "echo_with_prefix", "echo_json"}

func main() {
	root := &cobra.Command{
		Use:   "echo-probe",
		Short: "Run echo scenarios against a running MCP echo fixture",
		RunE:  run,
	}

	root.PersistentFlags().String("probe-url", "http://127.0.0.1:8000/mcp/jsonrpc", "MCP endpoint URL")
	root.PersistentFlags().String("scenario-file", "", "YAML scenario file (built-in scenarios when empty)")
	root.PersistentFlags().String("log-level", "info", "Log verbosity (debug, info, warn, error)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.ForLevel(config.LogLevel())).WithName("echo-probe")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cli, err := client.NewStreamableHttpClient(config.ProbeURL())
	if err != nil {
		return fmt.Errorf("creating MCP client: %w", err)
	}
	defer cli.Close()

	if err := cli.Start(ctx); err != nil {
		return fmt.Errorf("starting MCP client: %w", err)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "echo-probe",
		Version: "1.0.0",
	}
	initResult, err := cli.Initialize(ctx, initRequest)
	if err != nil {
		return fmt.Errorf("initializing MCP session: %w", err)
	}
	logger.Info("connected", "server", initResult.ServerInfo.Name, "version", initResult.ServerInfo.Version)

	if err := checkTools(ctx, cli, logger); err != nil {
		return err
	}

	scenarios := probe.DefaultScenarios()
	if path := config.ScenarioFile(); path != "" {
		scenarios, err = probe.Load(path)
		if err != nil {
			return err
		}
	}

	results, ok := probe.Run(ctx, cli, scenarios, logger)
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	logger.Info("probe finished", "passed", passed, "total", len(results))
	if !ok {
		return fmt.Errorf("%d of %d scenarios failed", len(results)-passed, len(results))
	}
	return nil
}

func checkTools(ctx context.Context, cli *client.Client, logger logging.Logger) error {
	listed, err := cli.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("listing tools: %w", err)
	}
	available := make(map[string]bool, len(listed.Tools))
	for _, tool := range listed.Tools {
		available[tool.Name] = true
	}
	for _, name := range expectedTools {
		if !available[name] {
			return fmt.Errorf("server does not expose tool %q", name)
		}
	}
	logger.Debug("all expected tools present", "count", len(expectedTools))
	return nil
}
