package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/reviewlab/landr/internal/policy"
	"github.com/reviewlab/landr/internal/reconcile"
	"github.com/reviewlab/landr/internal/reviewsdk"
	"github.com/reviewlab/landr/internal/submit"
	"github.com/reviewlab/landr/internal/svn"
	"github.com/reviewlab/landr/internal/workspace"
)

func init() {
	rootCmd.AddCommand(newSubmitCmd())
}

func newSubmitCmd() *cobra.Command {
	var yes bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "submit [REVISION-ID]",
		Aliases: []string{"land", "commit"},
		Short:   "Commit an approved revision's files to the working copy",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var revisionID string
			if len(args) == 1 {
				revisionID = args[0]
			}

			submitter, cleanup, err := buildSubmitter(yes, dryRun)
			if err != nil {
				fail(err)
			}
			defer cleanup()

			if err := submitter.Run(cmd.Context(), revisionID); err != nil {
				var abort *submit.AbortError
				if errors.As(err, &abort) {
					fmt.Printf("%s: %s\n", gray.Render("ABORTED"), err)
					os.Exit(1)
				}
				var conflict *reconcile.ConflictError
				if errors.As(err, &conflict) {
					fail(fmt.Errorf("%w\nresolve the local change in %q or add it to the revision", err, conflict.Path))
				}
				fail(err)
			}

			if dryRun {
				return
			}
			fmt.Printf("%s\n", green.Render("Revision landed."))
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Proceed past advisory warnings without asking")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Reconcile and show the file list without committing")

	return cmd
}

func buildSubmitter(yes, dryRun bool) (*submit.Submitter, func(), error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, nil, err
	}

	if !svn.Available() {
		return nil, nil, errors.New("svn binary not found in PATH; install subversion first")
	}

	ws, err := workspace.New(cfg.WorkingCopy)
	if err != nil {
		return nil, nil, err
	}

	oracle, err := ws.NewOracle()
	if err != nil {
		return nil, nil, err
	}

	sdk, err := reviewsdk.New(cfg.ServerURL)
	if err != nil {
		return nil, nil, err
	}

	var decider policy.Decider = policy.NewInteractive(policy.NewTTYConfirmer())
	if yes {
		decider = policy.AutoApprove{}
	}

	var picker submit.Picker
	if isatty.IsTerminal(os.Stdin.Fd()) {
		picker = &submit.TTYPicker{In: os.Stdin, Out: os.Stderr}
	}

	submitter := &submit.Submitter{
		Owner:         cfg.Owner,
		Service:       sdk.Revisions,
		VCS:           svn.New(ws.Root),
		Lock:          ws,
		Oracle:        oracle,
		Decider:       decider,
		Picker:        picker,
		MarkCommitted: !cfg.CommitHooks,
		DryRun:        dryRun,
		Out:           os.Stdout,
	}

	return submitter, sdk.Close, nil
}

func fail(err error) {
	fmt.Printf("%s: %s\n", red.Render("ERROR"), err)
	os.Exit(1)
}
