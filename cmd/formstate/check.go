package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate"
)

type checkOptions struct {
	schemaPath string
	valuePath  string
	locale     string
	component  string
	boxed      bool
	plain      bool
	humanize   bool
}

func (a *app) checkCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a value document and print the per-node report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.schemaPath, "schema", "", "JSON Schema or OpenAPI document (JSON or YAML)")
	flags.StringVar(&opts.valuePath, "value", "", "value document (JSON or YAML)")
	flags.StringVar(&opts.locale, "locale", "", "bundled locale name or locale file")
	flags.StringVar(&opts.component, "openapi-component", "", "read the schema from this OpenAPI component")
	flags.BoolVar(&opts.boxed, "boxed", false, "treat {\"value\": ...} objects in the value document as boxed values")
	flags.BoolVar(&opts.plain, "plain-titles", false, "strip markup from derived titles")
	flags.BoolVar(&opts.humanize, "humanize", false, "humanize property keys used as labels")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts checkOptions) error {
	s, err := loadSchema(cmd.Context(), opts.schemaPath, opts.component)
	if err != nil {
		return err
	}
	v, err := loadValue(opts.valuePath, opts.boxed)
	if err != nil {
		return err
	}
	l, err := loadLocale(opts.locale)
	if err != nil {
		return err
	}

	engineOpts := []formstate.Option{
		formstate.WithLocale(l),
		formstate.WithLogger(a.logger),
	}
	if opts.plain {
		engineOpts = append(engineOpts, formstate.WithPlainTitles())
	}
	if opts.humanize {
		engineOpts = append(engineOpts, formstate.WithHumanizedLabels())
	}

	report, err := formstate.New(engineOpts...).Inspect(s, v)
	if err != nil {
		return err
	}
	a.logger.Info("check complete", "schema", opts.schemaPath, "nodes", len(report.Nodes), "valid", report.Valid)

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))

	if !report.Valid {
		return errInvalid
	}
	return nil
}
