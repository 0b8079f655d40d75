package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	contentv1alpha1 "github.com/KirkDiggler/rpg-catalog/internal/handlers/content/v1alpha1"
)

var (
	genContext string
	count      int
)

var generateCmd = &cobra.Command{
	Use:   "generate [names-path]",
	Short: "Generate names on the server",
	Long: `Generate one or more names from a names document. Examples:

  generate enemies/goblins/names
  generate enemies/goblins/names --count 5`,
	Args: cobra.ExactArgs(1),
	RunE: generate,
}

func init() {
	generateCmd.Flags().StringVar(&genContext, "context", "", "generation context passed to macros")
	generateCmd.Flags().IntVar(&count, "count", 1, "number of names to generate")
}

func generate(_ *cobra.Command, args []string) error {
	client, cleanup, err := createContentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for i := 0; i < count; i++ {
		resp, err := client.GenerateName(ctx, &contentv1alpha1.GenerateNameRequest{
			NamesPath: args[0],
			Context:   genContext,
		})
		if err != nil {
			return fmt.Errorf("failed to generate name: %w", err)
		}
		fmt.Printf("%s\t%s\n", resp.ID, resp.Name)
	}
	return nil
}
