package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/emucfg/internal/config"
	"github.com/thoreinstein/emucfg/internal/errors"
	"github.com/thoreinstein/emucfg/internal/translate"
	"github.com/thoreinstein/emucfg/pkg/fileutil"
)

var showFormat string

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", string(translate.FormatJSON),
		"output format: json, yaml, toml")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [section]",
	Short: "Print the effective settings",
	Long: `Print the effective settings, after defaults have been filled in for
anything missing or damaged in the file. With a section name, print only
that section.

Sections: ` + strings.Join(config.SectionKeys(), ", "),
	Example: `  # Whole file
  emucfg show

  # One section as TOML
  emucfg show snes --format toml`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return config.SectionKeys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args, cmd.OutOrStdout())
	},
}

func runShow(cmd *cobra.Command, args []string, w io.Writer) error {
	format, err := translate.ParseFormat(showFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --format json, yaml or toml")
	}

	cfg := loadSettings(cmd)

	var data []byte
	if len(args) == 0 {
		data, err = cfg.Marshal()
	} else {
		data, err = marshalSection(cfg, args[0])
	}
	if err != nil {
		return err
	}

	out, err := translate.Render(format, data)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	_, err = w.Write(out)
	return err
}

func marshalSection(cfg *config.Configuration, key string) ([]byte, error) {
	v, err := cfg.SectionValue(key)
	if err != nil {
		return nil, errors.NewUserError(err,
			fmt.Sprintf("Valid sections: %s", strings.Join(config.SectionKeys(), ", ")))
	}
	data, err := fileutil.MarshalJSON(v)
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling section %s", key)
	}
	return data, nil
}
