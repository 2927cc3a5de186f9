package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hyperflex/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		name  string
		cfg   templates.Config
		force bool
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a config file and starter documents",
		Long: `Write hyperflex.json and starter element documents into dir
(default: the current directory).

Examples:
  hyperflex init
  hyperflex init site --template page --title "My Site"
  hyperflex init --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, n := range templates.List() {
					t, _ := templates.Get(n)
					fmt.Fprintf(w, "  %-8s %s\n", n, t.Description)
				}
				return nil
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			tmpl, err := templates.Get(name)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			written, err := tmpl.Create(dir, cfg, force)
			if err != nil {
				return err
			}
			for _, p := range written {
				success(w, "Created %s", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "template", "minimal", "Template to use")
	cmd.Flags().StringVar(&cfg.Title, "title", "", "Title for the starter document")
	cmd.Flags().StringVar(&cfg.Description, "description", "", "Description text")
	cmd.Flags().StringVar(&cfg.Lang, "lang", "en", "Document language")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&list, "list", false, "List available templates")

	return cmd
}
