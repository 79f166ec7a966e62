package main

import (
	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the valid expense categories",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(cli.TitleStyle.Render("Categories"))
			for _, category := range model.Categories() {
				cmd.Println("  " + category.String())
			}
		},
	}
}
