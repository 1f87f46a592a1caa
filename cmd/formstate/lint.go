package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate/pkg/jsonschema"
	"github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validation"
)

type violation struct {
	file     string
	location string
	message  string
}

func (a *app) lintCmd() *cobra.Command {
	var asOpenAPI bool

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Report editor keywords that can never take effect",
		Long:  "Lint schema documents for conditions on undeclared siblings, unknown operators, mismatched enum titles, undeclared required entries and invalid patterns.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, paths []string) error {
			var violations []violation
			for _, path := range paths {
				linted, err := lintFile(cmd, path, asOpenAPI)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				violations = append(violations, linted...)
			}
			a.logger.Debug("lint complete", "files", len(paths), "violations", len(violations))

			if len(violations) == 0 {
				return nil
			}
			sort.Slice(violations, func(i, j int) bool {
				if violations[i].file == violations[j].file {
					if violations[i].location == violations[j].location {
						return violations[i].message < violations[j].message
					}
					return violations[i].location < violations[j].location
				}
				return violations[i].file < violations[j].file
			})
			for _, v := range violations {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", v.file, v.location, v.message)
			}
			return errInvalid
		},
	}
	cmd.Flags().BoolVar(&asOpenAPI, "openapi", false, "treat inputs as OpenAPI documents and lint every component schema")
	return cmd
}

func lintFile(cmd *cobra.Command, path string, asOpenAPI bool) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if !asOpenAPI {
		s, err := jsonschema.Parse(raw)
		if err != nil {
			return nil, err
		}
		return lintSchema(path, "#", s), nil
	}

	components, err := openapi.LoadComponents(cmd.Context(), raw)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)

	var result []violation
	for _, name := range names {
		result = append(result, lintSchema(path, "#/components/schemas/"+name, components[name])...)
	}
	return result, nil
}

func lintSchema(file, location string, s schema.Schema) []violation {
	var result []violation
	report := func(msg string, args ...any) {
		result = append(result, violation{file: file, location: location, message: fmt.Sprintf(msg, args...)})
	}

	if len(s.EnumTitles) > 0 && len(s.EnumTitles) != len(s.Enum) {
		report("enumTitles has %d entries for %d enum values", len(s.EnumTitles), len(s.Enum))
	}
	if s.Pattern != nil {
		if _, err := validation.NewPatternCache(0).Compile(*s.Pattern); err != nil {
			report("%v", err)
		}
	}
	if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
		report("minimum %v exceeds maximum %v", *s.Minimum, *s.Maximum)
	}

	for _, name := range s.Required {
		if s.Type == schema.TypeObject && !s.HasProperty(name) {
			report("required property %q is not declared", name)
		}
	}

	for _, prop := range s.Properties {
		childLocation := location + "/properties/" + prop.Name
		for label, cond := range map[string]*schema.Condition{"requiredWhen": prop.Schema.RequiredWhen, "optionalWhen": prop.Schema.OptionalWhen} {
			if cond == nil {
				continue
			}
			if !s.HasProperty(cond.Property) {
				result = append(result, violation{file: file, location: childLocation, message: fmt.Sprintf("%s refers to undeclared property %q", label, cond.Property)})
			}
			if !cond.Operator.Known() {
				result = append(result, violation{file: file, location: childLocation, message: fmt.Sprintf("%s uses unknown operator %q", label, cond.Operator)})
			}
			if cond.Operator == schema.OperatorIn {
				if _, ok := cond.Operand.([]any); !ok {
					result = append(result, violation{file: file, location: childLocation, message: fmt.Sprintf("%s operator in expects an array operand", label)})
				}
			}
		}
		result = append(result, lintSchema(file, childLocation, prop.Schema)...)
	}

	if s.Items != nil {
		result = append(result, lintSchema(file, location+"/items", *s.Items)...)
	}
	for i, variant := range s.OneOf {
		result = append(result, lintSchema(file, location+"/oneOf/"+strconv.Itoa(i), variant)...)
	}
	return result
}
