package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencaptable/capsync/internal/config"
	"github.com/opencaptable/capsync/internal/schema"
	"github.com/opencaptable/capsync/internal/snapshot"
	"github.com/opencaptable/capsync/pkg/constants"
	"github.com/opencaptable/capsync/pkg/errors"
	"github.com/opencaptable/capsync/pkg/logging"
	"github.com/opencaptable/capsync/pkg/replicate"
)

var (
	diffDesiredPath      string
	diffActualPath       string
	diffOutput           string
	diffOutputFile       string
	diffDetails          bool
	diffSkipValidation   bool
	diffFailOnChanges    bool
	diffIgnoredFields    []string
	diffDeprecatedFields []string
)

// diffCmd computes the replication diff between a desired-state manifest and
// an actual-state snapshot.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compute the replication diff between desired and actual state",
	Long: `Diff loads a desired-state entity manifest (YAML or JSON) and an
actual-state snapshot document (JSON, as produced by the ledger query
client), and computes the creates, edits, deletes, and secondary-key
conflicts needed to reconcile them.

Edit detection runs only when the snapshot carries payloads; conflict
detection only when it carries secondary keys.`,
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVarP(&diffDesiredPath, "desired", "d", "", "desired-state manifest file (required)")
	diffCmd.Flags().StringVarP(&diffActualPath, "actual", "a", "", "actual-state snapshot file (required)")
	diffCmd.Flags().StringVarP(&diffOutput, "output", "o", "text", "output format (text, json)")
	diffCmd.Flags().StringVar(&diffOutputFile, "out", "", "write the JSON diff to a file instead of stdout")
	diffCmd.Flags().BoolVar(&diffDetails, "details", false, "include per-field difference trails on edits")
	diffCmd.Flags().BoolVar(&diffSkipValidation, "no-validate", false, "skip manifest schema validation")
	diffCmd.Flags().BoolVar(&diffFailOnChanges, "fail-on-changes", false, "exit non-zero when the diff is not empty")
	diffCmd.Flags().StringSliceVar(&diffIgnoredFields, "ignore", nil, "override the ignored field set")
	diffCmd.Flags().StringSliceVar(&diffDeprecatedFields, "deprecated", nil, "override the deprecated field set")

	cobra.CheckErr(diffCmd.MarkFlagRequired("desired"))
	cobra.CheckErr(diffCmd.MarkFlagRequired("actual"))
}

func runDiff(cmd *cobra.Command, _ []string) error {
	log := logging.Ctx(cmd.Context())

	manifest, err := snapshot.LoadManifest(diffDesiredPath)
	if err != nil {
		return err
	}
	if !diffSkipValidation {
		if err := schema.ValidateManifest(manifest); err != nil {
			return fmt.Errorf("manifest %s: %w", diffDesiredPath, err)
		}
	}
	log.Debug().Str("path", diffDesiredPath).Int("entities", len(manifest.Entities)).Msg("Loaded desired state")

	actual, err := snapshot.LoadInventory(diffActualPath)
	if err != nil {
		return err
	}
	log.Debug().Str("path", diffActualPath).Str("contract", actual.ContractAnchor).
		Int("entities", actual.Len()).Msg("Loaded actual state")

	differ := replicate.New(diffOptions()...)
	diff, err := differ.Diff(manifest.Entities, actual)
	if err != nil {
		return err
	}

	log.Info().
		Int("creates", len(diff.Creates)).
		Int("edits", len(diff.Edits)).
		Int("deletes", len(diff.Deletes)).
		Int("conflicts", len(diff.Conflicts)).
		Msg("Computed replication diff")

	if diffOutputFile != "" {
		if err := writeDiffFile(diffOutputFile, diff); err != nil {
			return err
		}
	}

	switch {
	case diffOutputFile != "" && diffOutput != "json":
		// File output already carries the full diff; keep stdout to a summary.
		fmt.Println(diff.String())
	case diffOutput == "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(diff); err != nil {
			return errors.WrapIO("write", "stdout", err)
		}
	default:
		diff.Print()
	}

	if diffFailOnChanges && diff.HasChanges() {
		return fmt.Errorf("desired and actual state differ (%d operations)", diff.Total)
	}
	return nil
}

// writeDiffFile writes the diff as indented JSON to the given path, creating
// parent directories as needed.
func writeDiffFile(path string, diff *replicate.Diff) error {
	data, err := json.MarshalIndent(diff, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("mkdir", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// diffOptions assembles the differ options from flags, falling back to the
// configuration file for field-set overrides.
func diffOptions() []replicate.Option {
	var opts []replicate.Option
	if diffDetails {
		opts = append(opts, replicate.WithDifferences())
	}

	ignored := diffIgnoredFields
	if ignored == nil {
		ignored = config.StringSlice("diff.ignored_fields")
	}
	if ignored != nil {
		opts = append(opts, replicate.WithIgnoredFields(ignored...))
	}

	deprecated := diffDeprecatedFields
	if deprecated == nil {
		deprecated = config.StringSlice("diff.deprecated_fields")
	}
	if deprecated != nil {
		opts = append(opts, replicate.WithDeprecatedFields(deprecated...))
	}

	return opts
}
