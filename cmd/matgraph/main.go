// Package main provides the matgraph CLI entry point: local inspection,
// conversion, validation, and repair of node-graph documents.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/matforge/matgraph/pkg/config"
	"github.com/matforge/matgraph/pkg/nodes"
	"github.com/matforge/matgraph/pkg/schema"
)

var (
	version = "0.1.0"
	commit  = "dev" // Set via ldflags: -X main.commit=$(git rev-parse --short HEAD)
)

var (
	flagConfig string
	flagSchema string
	flagIndent int
	flagOutput string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matgraph",
		Short: "matgraph - node-graph document tool",
		Long: `matgraph inspects, converts, validates, and repairs node-graph
documents of the matforge data platform, entirely locally.

Documents are JSON trees of typed nodes ("node" discriminant lists) where
repeated nodes may be condensed into uid references.`,
		Version: fmt.Sprintf("%s (%s)", version, commit),
	}
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: auto-detect matgraph.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagSchema, "schema", "", "node schema file, JSON or YAML (default: embedded)")
	rootCmd.PersistentFlags().IntVar(&flagIndent, "indent", -1, "output indent width (-1: from config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(validateCmd(), condenseCmd(), expandCmd(), repairCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSetup resolves config and schema service from flags and environment.
func loadSetup() (config.Config, *schema.Service, error) {
	path := flagConfig
	if path == "" {
		path = config.FindConfigFile()
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return cfg, nil, err
	}
	if flagSchema != "" {
		cfg.Schema = flagSchema
	}
	if flagIndent >= 0 {
		cfg.Indent = flagIndent
	}

	var svc *schema.Service
	if cfg.Schema != "" {
		svc, err = schema.FromFile(cfg.Schema)
	} else {
		svc, err = schema.Default()
	}
	if err != nil {
		return cfg, nil, err
	}
	return cfg, svc, nil
}

func decodeFile(path string) (nodes.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return nodes.Decode(data)
}

func writeOutput(cfg config.Config, root nodes.Node, mode nodes.EncodeMode) error {
	var (
		out []byte
		err error
	)
	if cfg.Indent > 0 {
		indent := ""
		for i := 0; i < cfg.Indent; i++ {
			indent += " "
		}
		out, err = nodes.EncodeIndent(root, mode, indent)
	} else {
		out, err = nodes.Encode(root, mode)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if flagOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(flagOutput, out, 0o644)
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Decode a document and run full graph validation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := loadSetup()
			if err != nil {
				return err
			}
			root, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			if err := root.Validate(svc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%s)\n", args[0], root)
			return nil
		},
	}
}

func convertCmd(use, short string, mode nodes.EncodeMode) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadSetup()
			if err != nil {
				return err
			}
			root, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			return writeOutput(cfg, root, mode)
		},
	}
}

func condenseCmd() *cobra.Command {
	return convertCmd("condense", "Re-encode a document with uid-reference condensation", nodes.Condensed)
}

func expandCmd() *cobra.Command {
	return convertCmd("expand", "Re-encode a document with every node fully inlined", nodes.Expanded)
}

func repairCmd() *cobra.Command {
	var (
		experiment string
		maxIter    int
	)
	cmd := &cobra.Command{
		Use:   "repair <file>",
		Short: "Adopt orphaned nodes into their owning collections",
		Long: `repair decodes a project document, repeatedly validates it, and moves
each reported orphan into the correct owning collection: materials into the
project's material list, everything else into the experiment selected with
--experiment. The repaired document is re-encoded to --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := loadSetup()
			if err != nil {
				return err
			}
			root, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			project, ok := root.(*nodes.Project)
			if !ok {
				return fmt.Errorf("document root is %s, expected a Project", root)
			}

			var active *nodes.Experiment
			if experiment != "" {
				matches := nodes.FindChildren(project, map[string]any{
					"node": []any{nodes.TagExperiment},
					"name": experiment,
				}, -1)
				if len(matches) == 0 {
					return fmt.Errorf("no experiment named %q in %s", experiment, args[0])
				}
				active = matches[0].(*nodes.Experiment)
			}

			if err := nodes.AddOrphanedNodes(project, active, maxIter, svc); err != nil {
				return err
			}
			log.Printf("repaired %s", args[0])
			return writeOutput(cfg, project, nodes.Condensed)
		},
	}
	cmd.Flags().StringVar(&experiment, "experiment", "", "name of the experiment that adopts orphaned steps")
	cmd.Flags().IntVar(&maxIter, "max-iterations", 10, "repair iteration budget")
	return cmd
}
