package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	contentv1alpha1 "github.com/KirkDiggler/rpg-catalog/internal/handlers/content/v1alpha1"
)

var asObject bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [reference]",
	Short: "Resolve a reference on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  resolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&asObject, "object", false, "return the referenced node as JSON")
}

func resolve(_ *cobra.Command, args []string) error {
	client, cleanup, err := createContentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Resolve(ctx, &contentv1alpha1.ResolveRequest{
		Reference: args[0],
		AsObject:  asObject,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve: %w", err)
	}

	if !resp.Found {
		fmt.Printf("%s did not resolve\n", resp.Reference)
		return nil
	}
	if asObject {
		fmt.Println(string(resp.Object))
		return nil
	}
	fmt.Println(resp.Value)
	return nil
}
