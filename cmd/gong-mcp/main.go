// Command gong-mcp serves the Gong calls API as MCP tools over stdio.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/effective-security/xlog"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"

	"github.com/zentriq/gong-mcp/pkg/gong"
	"github.com/zentriq/gong-mcp/tools/gongcalls"
)

var logger = xlog.NewPackageLogger("github.com/zentriq/gong-mcp", "cmd")

const (
	serverName    = "gong-mcp"
	serverVersion = "0.1.0"
)

func main() {
	// stdout carries the MCP framing; all diagnostics go to stderr
	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	xlog.SetGlobalLogLevel(xlog.INFO)

	if err := run(); err != nil {
		logger.KV(xlog.ERROR, "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := gong.LoadConfig()
	if err != nil {
		return err
	}

	client := gong.New(cfg)
	defer client.Close()

	server := mcp.NewServer(stdio.NewStdioServerTransport(),
		mcp.WithName(serverName),
		mcp.WithVersion(serverVersion),
	)

	listCalls, err := gongcalls.NewListCalls(client)
	if err != nil {
		return err
	}
	if err := listCalls.RegisterMCP(server); err != nil {
		return err
	}

	transcripts, err := gongcalls.NewRetrieveTranscripts(client)
	if err != nil {
		return err
	}
	if err := transcripts.RegisterMCP(server); err != nil {
		return err
	}

	if err := server.Serve(); err != nil {
		return err
	}
	logger.KV(xlog.INFO, "status", "serving", "transport", "stdio")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.KV(xlog.INFO, "status", "shutting down")
	return nil
}
