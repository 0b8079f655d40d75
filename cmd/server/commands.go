package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	contentv1alpha1 "github.com/KirkDiggler/rpg-catalog/internal/handlers/content/v1alpha1"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/generation"
	"github.com/KirkDiggler/rpg-catalog/internal/orchestrators/pattern"
	"github.com/KirkDiggler/rpg-catalog/internal/pkg/selection"
	redisclient "github.com/KirkDiggler/rpg-catalog/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-catalog/internal/repositories/catalog"
)

var (
	asObject       bool
	genContext     string
	componentFlags []string
	publishPrefix  string
	probCatalog    string
	probCategory   string
	schemaOut      string
	commandTimeout time.Duration
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [reference...]",
	Short: "Resolve catalog references",
	Long: `Resolve one or more references against the configured catalog source.

  resolve "@items/weapons/swords:Longsword.damage"
  resolve --object "@classes/warrior:Fighter"
  resolve "@items/materials:*[itemTypeTraits.weapon].name"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

var generateCmd = &cobra.Command{
	Use:   "generate [names-path]",
	Short: "Generate a name from a names document",
	Long: `Pick a weighted pattern from a names document and expand it.

  generate enemies/goblins/names
  generate items/weapons/names --context weapon`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var executeCmd = &cobra.Command{
	Use:   "execute [pattern]",
	Short: "Expand a pattern with components given on the command line",
	Long: `Expand a pattern. Components are slot=value:weight lists.

  execute "{prefix}+{base}" -c prefix=Ancient:100,Old:50 -c base=Sword:100
  execute "@materialRef {base}" --context weapon -c base=Sword`,
	Args: cobra.ExactArgs(1),
	RunE: runExecute,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report references that do not resolve",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Copy catalogs from the content directory into redis",
	Args:  cobra.NoArgs,
	RunE:  runPublish,
}

var probabilitiesCmd = &cobra.Command{
	Use:   "probabilities [value:weight...]",
	Short: "Show selection chances for weighted options or catalog items",
	Long: `Show the chance of drawing each option.

  probabilities common:1 rare:5 legendary:50
  probabilities --catalog items/weapons/catalog --category swords`,
	RunE: runProbabilities,
}

var schemaCmd = &cobra.Command{
	Use:   "schema [message...]",
	Short: "Print JSON Schemas for the content service messages",
	Long: `Print the JSON Schema of each content service message. With --out the
schemas are written as <message>.schema.json files into that directory.

  schema ResolveRequest
  schema --out schemas`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOut, "out", "", "directory to write schema files into")

	for _, cmd := range []*cobra.Command{resolveCmd, generateCmd, executeCmd, validateCmd, publishCmd, probabilitiesCmd} {
		cmd.Flags().DurationVar(&commandTimeout, "timeout", 30*time.Second, "command timeout")
	}

	resolveCmd.Flags().BoolVar(&asObject, "object", false, "print the referenced node as JSON")
	generateCmd.Flags().StringVar(&genContext, "context", "", "generation context passed to macros")
	executeCmd.Flags().StringVar(&genContext, "context", "", "generation context passed to macros")
	executeCmd.Flags().StringArrayVarP(&componentFlags, "component", "c", nil, "slot=value:weight,... (repeatable)")
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "only publish paths under this prefix")
	probabilitiesCmd.Flags().StringVar(&probCatalog, "catalog", "", "catalog document path")
	probabilitiesCmd.Flags().StringVar(&probCategory, "category", "", "category within the catalog")
}

// withApp builds the app, runs fn and releases the app
func withApp(fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	a, err := newApp(cfg, appLog)
	if err != nil {
		return err
	}
	defer a.close(appLog)

	return fn(ctx, a)
}

func runResolve(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		missing := 0
		for _, ref := range args {
			if asObject {
				node, found := a.resolver.ResolveToObject(ctx, ref)
				if !found {
					missing++
					fmt.Printf("%s\t<unresolved>\n", ref)
					continue
				}
				data, err := json.MarshalIndent(node, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode %s: %w", ref, err)
				}
				fmt.Printf("%s\n%s\n", ref, data)
				continue
			}

			value, found := a.resolver.Resolve(ctx, ref)
			if !found {
				missing++
				fmt.Printf("%s\t<unresolved>\n", ref)
				continue
			}
			fmt.Printf("%s\t%s\n", ref, value)
		}

		if missing > 0 {
			return fmt.Errorf("%d of %d references did not resolve", missing, len(args))
		}
		return nil
	})
}

func runGenerate(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		out, err := a.generator.GenerateName(ctx, generation.GenerateNameInput{
			NamesPath: args[0],
			Context:   genContext,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t(pattern %q)\n", out.ID, out.Name, out.Pattern)
		return nil
	})
}

func runExecute(_ *cobra.Command, args []string) error {
	components, err := parseComponents(componentFlags)
	if err != nil {
		return err
	}

	return withApp(func(ctx context.Context, a *app) error {
		out, err := a.executor.Execute(ctx, pattern.ExecuteInput{
			Pattern:    args[0],
			Components: components,
			Context:    genContext,
		})
		if err != nil {
			return err
		}
		fmt.Println(out.Result)
		return nil
	})
}

func runValidate(_ *cobra.Command, _ []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		out, err := a.validator.Validate(ctx)
		if err != nil {
			return err
		}

		for _, finding := range out.Unresolved {
			fmt.Printf("%s\t%s\t%s\n", finding.DocumentPath, finding.JSONPath, finding.Reference)
		}
		fmt.Printf("\n%d documents, %d references checked, %d optional skipped, %d unresolved\n",
			out.Documents, out.Checked, out.Skipped, len(out.Unresolved))

		if len(out.Unresolved) > 0 {
			return fmt.Errorf("%d references did not resolve", len(out.Unresolved))
		}
		return nil
	})
}

func runPublish(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	from, err := catalogrepo.NewFilesystem(&catalogrepo.FilesystemConfig{Root: cfg.CatalogRoot})
	if err != nil {
		return err
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	to, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client, KeyPrefix: cfg.RedisKeyPrefix})
	if err != nil {
		return err
	}

	out, err := catalogrepo.Copy(ctx, catalogrepo.CopyInput{From: from, To: to, Prefix: publishPrefix})
	if out != nil {
		for _, p := range out.Paths {
			fmt.Println(p)
		}
	}
	if err != nil {
		return err
	}

	appLog.Info("catalogs published",
		"count", len(out.Paths),
		"root", cfg.CatalogRoot,
		"redis", cfg.RedisAddr,
	)
	return nil
}

func runProbabilities(_ *cobra.Command, args []string) error {
	if probCatalog == "" {
		options, err := parseOptions(strings.Join(args, ","))
		if err != nil {
			return err
		}
		if len(options) == 0 {
			return fmt.Errorf("give value:weight options or --catalog")
		}
		printProbabilities(selection.OptionProbabilities(options))
		return nil
	}

	return withApp(func(ctx context.Context, a *app) error {
		doc := a.store.GetFile(ctx, probCatalog)
		if doc == nil {
			return fmt.Errorf("catalog %s not found", probCatalog)
		}
		items := doc.Items(probCategory)
		if len(items) == 0 {
			return fmt.Errorf("catalog %s has no items in %q", probCatalog, probCategory)
		}
		printProbabilities(selection.Probabilities(items))
		return nil
	})
}

func runSchema(_ *cobra.Command, args []string) error {
	schemas := contentv1alpha1.Schemas()
	names := args
	if len(names) == 0 {
		names = contentv1alpha1.MessageNames()
	}

	for _, name := range names {
		schema, ok := schemas[name]
		if !ok {
			return fmt.Errorf("unknown message %q", name)
		}
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema %s: %w", name, err)
		}

		if schemaOut == "" {
			fmt.Printf("%s\n", data)
			continue
		}
		if err := writeSchema(filepath.Join(schemaOut, name+".schema.json"), data); err != nil {
			return err
		}
	}
	return nil
}

// writeSchema replaces path atomically
func writeSchema(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}

func printProbabilities(probabilities map[string]float64) {
	names := make([]string, 0, len(probabilities))
	for name := range probabilities {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if probabilities[names[i]] != probabilities[names[j]] {
			return probabilities[names[i]] > probabilities[names[j]]
		}
		return names[i] < names[j]
	})

	w := os.Stdout
	for _, name := range names {
		fmt.Fprintf(w, "%-24s %6.2f%%\n", name, probabilities[name])
	}
}

// parseComponents turns slot=value:weight,... flags into a component table
func parseComponents(flags []string) (map[string][]selection.Option, error) {
	components := make(map[string][]selection.Option, len(flags))
	for _, flag := range flags {
		slot, list, ok := strings.Cut(flag, "=")
		slot = strings.TrimSpace(slot)
		if !ok || slot == "" {
			return nil, fmt.Errorf("component %q must look like slot=value:weight,...", flag)
		}
		options, err := parseOptions(list)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", slot, err)
		}
		components[slot] = append(components[slot], options...)
	}
	return components, nil
}

// parseOptions parses value:weight,... where the weight defaults to 1
func parseOptions(list string) ([]selection.Option, error) {
	options := []selection.Option{}
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		value, rawWeight, hasWeight := strings.Cut(part, ":")
		weight := 1
		if hasWeight {
			w, err := strconv.Atoi(strings.TrimSpace(rawWeight))
			if err != nil {
				return nil, fmt.Errorf("weight of %q is not a number", value)
			}
			weight = w
		}
		options = append(options, selection.Option{Value: strings.TrimSpace(value), Weight: weight})
	}
	return options, nil
}
