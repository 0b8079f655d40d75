package client

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	contentv1alpha1 "github.com/KirkDiggler/rpg-catalog/internal/handlers/content/v1alpha1"
)

var probabilitiesCmd = &cobra.Command{
	Use:   "probabilities [value:weight...]",
	Short: "Ask the server for selection chances",
	Args:  cobra.MinimumNArgs(1),
	RunE:  probabilities,
}

func probabilities(_ *cobra.Command, args []string) error {
	req := &contentv1alpha1.ProbabilitiesRequest{}
	for _, arg := range args {
		value, rawWeight, _ := strings.Cut(arg, ":")
		weight := 1
		if rawWeight != "" {
			w, err := strconv.Atoi(rawWeight)
			if err != nil {
				return fmt.Errorf("weight of %q is not a number", value)
			}
			weight = w
		}
		req.Options = append(req.Options, contentv1alpha1.Option{Value: value, Weight: weight})
	}

	client, cleanup, err := createContentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Probabilities(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get probabilities: %w", err)
	}

	values := make([]string, 0, len(resp.Probabilities))
	for value := range resp.Probabilities {
		values = append(values, value)
	}
	sort.Strings(values)
	for _, value := range values {
		fmt.Printf("%-24s %6.2f%%\n", value, resp.Probabilities[value])
	}
	return nil
}
