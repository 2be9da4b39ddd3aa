package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdfix/internal/logging"
	"github.com/yaklabco/mdfix/pkg/rule"
)

const formatJSON = "json"

type rulesFlags struct {
	format string
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// setInfo represents a document binding in JSON output.
type setInfo struct {
	Document string   `json:"document"`
	Set      string   `json:"set"`
	Rules    []string `json:"rules"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules and per-document rule sets",
		Long: `List every rewrite rule with its code and description, then the
ordered rule list each known document receives. Order matters: rules in
a set run left to right, each over the previous rule's output.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := rule.Options{}
			rules := rule.Catalogue(opts)
			registry := rule.NewDefaultRegistry(opts)

			if flags.format == formatJSON {
				return outputRulesJSON(rules, registry)
			}

			logger := logging.NewInteractive()

			logger.Info("available rules")
			for _, r := range rules {
				logger.Info(r.Code(), logging.FieldDescription, r.Description())
			}

			logger.Info("document rule sets")
			for _, identity := range registry.Identities() {
				set, _ := registry.Lookup(identity)
				logger.Info(identity,
					logging.FieldRuleSet, set.Name(),
					"rules", strings.Join(ruleCodes(set), " "),
				)
			}
			fallback := registry.Fallback()
			logger.Info("(any other file)",
				logging.FieldRuleSet, fallback.Name(),
				"rules", strings.Join(ruleCodes(fallback), " "),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func ruleCodes(set rule.RuleSet) []string {
	codes := make([]string, 0, set.Len())
	for _, r := range set.Rules() {
		codes = append(codes, r.Code())
	}
	return codes
}

// outputRulesJSON outputs the catalogue and bindings as a JSON object.
func outputRulesJSON(rules []rule.Rule, registry *rule.Registry) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, ruleInfo{
			Code:        r.Code(),
			Description: r.Description(),
		})
	}

	sets := make([]setInfo, 0, len(registry.Identities())+1)
	for _, identity := range registry.Identities() {
		set, _ := registry.Lookup(identity)
		sets = append(sets, setInfo{
			Document: identity,
			Set:      set.Name(),
			Rules:    ruleCodes(set),
		})
	}
	fallback := registry.Fallback()
	sets = append(sets, setInfo{
		Document: "*",
		Set:      fallback.Name(),
		Rules:    ruleCodes(fallback),
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Rules []ruleInfo `json:"rules"`
		Sets  []setInfo  `json:"sets"`
	}{Rules: infos, Sets: sets}); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
