package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/value"
)

func (a *app) defaultsCmd() *cobra.Command {
	var (
		schemaPath string
		valuePath  string
		component  string
		boxed      bool
	)

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default value a required node starts with",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSchema(cmd.Context(), schemaPath, component)
			if err != nil {
				return err
			}
			initial, err := loadValue(valuePath, boxed)
			if err != nil {
				return err
			}

			out := formstate.New(formstate.WithLogger(a.logger)).Default(true, s, initial)
			payload, err := json.MarshalIndent(value.Plain(out), "", "  ")
			if err != nil {
				return fmt.Errorf("encode default: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "JSON Schema or OpenAPI document (JSON or YAML)")
	cmd.Flags().StringVar(&valuePath, "initial", "", "optional initial value document")
	cmd.Flags().StringVar(&component, "openapi-component", "", "read the schema from this OpenAPI component")
	cmd.Flags().BoolVar(&boxed, "boxed", false, "treat {\"value\": ...} objects in the initial document as boxed values")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
