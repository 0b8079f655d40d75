// Package client provides commands that call a running catalog server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	contentv1alpha1 "github.com/KirkDiggler/rpg-catalog/internal/handlers/content/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running catalog server",
	Long:  `Client commands make real gRPC requests to the content service.`,
	// the server side config is not needed to dial
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50052", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(probabilitiesCmd)
}

// createContentClient dials the server and returns a content client
func createContentClient() (contentv1alpha1.ContentServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return contentv1alpha1.NewContentServiceClient(conn), cleanup, nil
}
