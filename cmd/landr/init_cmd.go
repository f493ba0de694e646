package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reviewlab/landr/internal/config"
)

func init() {
	rootCmd.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	var commitHooks bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the landr config file",
		Long:  "Write the landr config file from the --owner, --server and --working-copy flags.",
		Run: func(cmd *cobra.Command, args []string) {
			if cfg, err := config.Load(config.DefaultConfigPath); err == nil {
				fmt.Println("landr already initialized")
				fmt.Printf("Config Path:  %s\n", green.Render(cfg.Path))
				fmt.Printf("Owner:        %s\n", cyan.Render(cfg.Owner))
				fmt.Printf("Server:       %s\n", cyan.Render(cfg.ServerURL))
				fmt.Printf("Working Copy: %s\n", cyan.Render(cfg.WorkingCopy))
				os.Exit(0)
			}

			cfg := &config.Config{
				Owner:       viper.GetString("owner"),
				ServerURL:   viper.GetString("server_url"),
				WorkingCopy: viper.GetString("working_copy"),
				CommitHooks: commitHooks,
			}

			if err := cfg.Validate(); err != nil {
				fail(errors.Join(err, errors.New("pass --owner, --server and --working-copy")))
			}

			if err := cfg.Save(config.DefaultConfigPath); err != nil {
				fail(err)
			}

			fmt.Printf("Config written to '%s'\n", green.Render(config.DefaultConfigPath))
		},
	}

	cmd.Flags().BoolVar(&commitHooks, "commit-hooks", false, "repository has server-side commit hooks")

	return cmd
}
