package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/opencaptable/capsync/pkg/captable"
)

var typesShowAliases bool

// typesCmd represents the types command.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the canonical entity type vocabulary",
	Long: `List displays every canonical cap-table entity type the diff engine
understands, along with its singular and plural display labels and, for
uniqueness-constrained types, the secondary key field.

With --aliases it also shows the deprecated alias tags and the canonical
type each one resolves to.`,
	Run: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().BoolVar(&typesShowAliases, "aliases", false, "also list deprecated alias tags")
}

func runTypes(_ *cobra.Command, _ []string) {
	title := cases.Title(language.English)

	types := captable.Types()
	fmt.Printf("Found %d canonical entity types:\n\n", len(types))
	for _, t := range types {
		line := fmt.Sprintf("  %-44s %s", t, title.String(t.Label(2)))
		if keyField, keyed := captable.SecondaryKeyField(t); keyed {
			line += fmt.Sprintf("  (secondary key: %s)", keyField)
		}
		fmt.Println(line)
	}

	if !typesShowAliases {
		return
	}

	aliases := captable.Aliases()
	tags := make([]captable.EntityType, 0, len(aliases))
	for alias := range aliases {
		tags = append(tags, alias)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	fmt.Printf("\nDeprecated aliases (%d):\n\n", len(aliases))
	for _, alias := range tags {
		fmt.Printf("  %-44s -> %s\n", alias, aliases[alias])
	}
}
