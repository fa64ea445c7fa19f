// Command option-dump prints the compiled video markup configuration form,
// localized, as YAML or JSON. It needs no database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"thirdcoast.systems/videomarkup/pkg/markupconfig"
)

type options struct {
	format   string
	locale   string
	provider string
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "option-dump",
		Short:         "Print the compiled video markup settings form",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "output format (yaml, json)")
	cmd.Flags().StringVarP(&opts.locale, "locale", "l", "en", "locale used for labels and messages")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "only dump one provider (youtube, vimeo)")
	return cmd
}

func dump(w io.Writer, opts options) error {
	compiler := markupconfig.NewCompiler(markupconfig.NewPrinter(opts.locale))

	var payload any
	if opts.provider == "" {
		payload = markupconfig.BuildForm(compiler, markupconfig.FormInput{Settings: markupconfig.Defaults()})
	} else {
		p, ok := lo.Find(markupconfig.Providers(), func(p markupconfig.Provider) bool {
			return strings.EqualFold(string(p.Namespace), opts.provider) ||
				strings.EqualFold(strings.TrimSuffix(p.Label, " Options"), opts.provider)
		})
		if !ok {
			return fmt.Errorf("unknown provider %q", opts.provider)
		}
		payload = compiler.CompileProvider(p)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	switch strings.ToLower(opts.format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "yaml", "yml":
		// Round trip through JSON so YAML keys follow the json tags.
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
