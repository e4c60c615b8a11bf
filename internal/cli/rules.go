package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/lang"
)

var (
	flagRulesLang string
	flagRulesFile string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra []catalog.Rule
		if flagRulesFile != "" {
			rules, err := catalog.LoadFile(flagRulesFile)
			if err != nil {
				return fmt.Errorf("loading rules file: %w", err)
			}
			extra = rules
		}
		cat, err := catalog.New(extra...)
		if err != nil {
			return err
		}

		rules := cat.All()
		if flagRulesLang != "" {
			rules = cat.RulesFor(lang.Language(flagRulesLang))
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLANGUAGE\tSEVERITY\tCATEGORY\tOWASP\tDESCRIPTION")
		for _, r := range rules {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.Language, r.Severity, r.Category, r.OWASP, r.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rulesCmd.Flags().StringVar(&flagRulesLang, "lang", "", "Only rules that apply to this language (rust, javascript, typescript, python)")
	rulesCmd.Flags().StringVar(&flagRulesFile, "rules", "", "Custom rules file path (YAML)")
}
