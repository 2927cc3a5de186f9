package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hyperflex/pkg/selector"
)

func parseCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <selector>...",
		Short: "Show how selectors are parsed",
		Long: `Parse each selector into its tag, id and classes.

Examples:
  hyperflex parse 'ul#menu.nav.dark'
  hyperflex parse --json input.field button`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, s := range args {
				d, err := selector.Parse(s)
				if err != nil {
					return err
				}
				if asJSON {
					data, err := json.Marshal(map[string]any{
						"selector":  s,
						"tag":       d.Tag,
						"id":        d.ID,
						"classList": d.ClassList,
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(w, string(data))
					continue
				}
				fmt.Fprintf(w, "%s\n  tag:     %s\n  id:      %s\n  classes: %s\n",
					s, d.Tag, d.ID, strings.Join(d.ClassList, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per selector")

	return cmd
}
