package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bindkit/core/binder"
)

var errNoFields = errors.New("at least one --field is required unless --map is set")

func newBindCommand() *cobra.Command {
	var (
		query  string
		fields []string
		asMap  bool
	)

	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Bind a query string against field specs",
		Long: `Bind parses a query string, binds it with the given fields and prints the
result as JSON. Fields use the form name:kind[:required][:nullable][:multi][:default=value].

Example:
  basic bind --query 'username=hello&age=20' --field username:string:required --field age:int:required
  basic bind --query 'age=' --field age:int:default=-1
  basic bind --query 'a=1&a=2&b=3' --map`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := url.ParseQuery(query)
			if err != nil {
				return fmt.Errorf("parse query: %w", err)
			}
			values := binder.NewValues(raw)

			var out any
			if asMap {
				out = binder.BindMap(values)
			} else {
				if len(fields) == 0 {
					return errNoFields
				}
				specs := make([]binder.Spec, 0, len(fields))
				for _, f := range fields {
					spec, err := binder.ParseSpec(f)
					if err != nil {
						return err
					}
					specs = append(specs, spec)
				}
				schema, err := binder.NewSchema(specs...)
				if err != nil {
					return err
				}
				obj, err := schema.Bind(values)
				if err != nil {
					return err
				}
				out = obj
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "query string to bind, e.g. 'a=1&b=2'")
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "field spec, repeatable")
	cmd.Flags().BoolVar(&asMap, "map", false, "bind every key to its first value")

	return cmd
}
