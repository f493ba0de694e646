package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reviewlab/landr/internal/reviewsdk"
)

func init() {
	rootCmd.AddCommand(newRevisionsCmd())
}

func newRevisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "revisions",
		Aliases: []string{"ls"},
		Short:   "List your committable revisions",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := currentConfig()
			if err != nil {
				fail(err)
			}

			sdk, err := reviewsdk.New(cfg.ServerURL)
			if err != nil {
				fail(err)
			}
			defer sdk.Close()

			revisions, err := sdk.Revisions.Committable(cmd.Context(), cfg.Owner)
			if err != nil {
				fail(err)
			}

			if len(revisions) == 0 {
				fmt.Printf("No committable revisions for '%s'\n", cyan.Render(cfg.Owner))
				return
			}

			var sb strings.Builder
			for idx, rev := range revisions {
				if idx > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(fmt.Sprintf("%s%s\n", gray.Render("ID     "), green.Render(rev.ID)))
				sb.WriteString(fmt.Sprintf("%s%s\n", gray.Render("Title  "), cyan.Render(rev.Title)))
			}
			fmt.Print(sb.String())
		},
	}
}
