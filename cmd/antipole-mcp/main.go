package main

import (
	"fmt"
	"log"
	"os"

	"github.com/antipole-index/antipole/internal/config"
	"github.com/antipole-index/antipole/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "antipole"
	serverVersion = "1.0.0"
)

func main() {
	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Create MCP server with tool capabilities
	server := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	configPath := os.Getenv("ANTIPOLE_CONFIG")
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.LoadTomlConfig(configPath)
		if err != nil {
			log.Printf("Warning: failed to load config: %v, using defaults", err)
			cfg = config.DefaultConfig()
		} else {
			cfg = loaded
		}
	} else {
		cfg = config.DefaultConfig()
	}

	dependencies := mcp.NewDependencies(cfg, configPath)
	handlers := mcp.NewHandlerSet(dependencies)

	// Register all antipole tools
	mcp.RegisterTools(server, handlers)

	log.Printf("Starting %s MCP server v%s\n", serverName, serverVersion)
	log.Println("Registered tools:")
	log.Println("  - build_index: construct an Antipole Tree and make it the active index")
	log.Println("  - range_search: every indexed point within a radius of a query point")
	log.Println("  - knn_search: the k nearest indexed points to a query point")
	log.Println("  - tree_stats: node/leaf counts, max depth, average leaf size and radius")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	// Start server with stdio transport
	// This blocks until the server is terminated
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
