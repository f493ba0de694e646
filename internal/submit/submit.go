// Package submit orchestrates landing one approved revision: it resolves the
// revision against the review server, reconciles the declared path set with
// the working copy, runs the decision policy over advisories, and issues the
// commit.
package submit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"

	"github.com/reviewlab/landr/internal/policy"
	"github.com/reviewlab/landr/internal/reconcile"
	"github.com/reviewlab/landr/internal/reviewsdk"
)

// ReviewService is the review-server surface the submitter consumes.
// Implemented by reviewsdk.RevisionsAPI.
type ReviewService interface {
	Committable(ctx context.Context, owner string) ([]reviewsdk.RevisionRef, error)
	DeclaredPaths(ctx context.Context, revisionID string) ([]string, error)
	CommitMessage(ctx context.Context, revisionID string) (string, error)
	MarkCommitted(ctx context.Context, revisionID string) error
}

// VCS is the version-control surface. Implemented by svn.Client.
type VCS interface {
	Status(ctx context.Context) (reconcile.Status, error)
	Commit(ctx context.Context, paths []string, message string) error
}

// Locker serializes landr invocations on one working copy.
type Locker interface {
	Lock() error
	Unlock() error
}

// Picker chooses among multiple committable revisions when the caller did not
// name one.
type Picker interface {
	Pick(revisions []reviewsdk.RevisionRef) (string, error)
}

// Submitter wires the collaborators for one commit attempt. All fields except
// Picker and Out are required.
type Submitter struct {
	Owner   string
	Service ReviewService
	VCS     VCS
	Lock    Locker
	Oracle  reconcile.ExistenceOracle
	Decider policy.Decider
	Picker  Picker

	// MarkCommitted is set when the repository has no server-side commit
	// hooks, so landr must tell the review server itself after the commit.
	MarkCommitted bool
	// DryRun stops after the decision policy and prints the final file list.
	DryRun bool
	// Out receives user-facing output. Defaults to io.Discard when nil.
	Out io.Writer
}

// Run lands the revision. An empty revisionID resolves against the caller's
// committable revisions. Nothing is mutated until the final commit call.
func (s *Submitter) Run(ctx context.Context, revisionID string) error {
	revisionID, err := s.resolveRevision(ctx, revisionID)
	if err != nil {
		return err
	}

	if err := s.Lock.Lock(); err != nil {
		return err
	}
	defer s.Lock.Unlock()

	// both are required before reconciliation; fetch them together
	var declaredPaths []string
	var message string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		declaredPaths, err = s.Service.DeclaredPaths(gctx, revisionID)
		return err
	})
	g.Go(func() error {
		var err error
		message, err = s.Service.CommitMessage(gctx, revisionID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	status, err := s.VCS.Status(ctx)
	if err != nil {
		return err
	}

	declared := mapset.NewSet(declaredPaths...)
	result, err := reconcile.Reconcile(declared, status, s.Oracle)
	if err != nil {
		// conflicts and emptiness are terminal; presentation is the caller's
		return err
	}

	// fixed order: unincluded modifications first, then missing paths
	advisories := []struct {
		category policy.Category
		paths    []string
	}{
		{policy.UnincludedModifications, result.UnincludedModifications},
		{policy.MissingPaths, result.MissingPaths},
	}
	for _, adv := range advisories {
		if len(adv.paths) == 0 {
			continue
		}
		decision, err := s.Decider.Decide(adv.category, adv.paths)
		if err != nil {
			return err
		}
		if decision != policy.Proceed {
			slog.Info("submit aborted", "revision", revisionID, "category", adv.category)
			return &AbortError{Category: adv.category}
		}
	}

	finalPaths := result.SortedFinalPaths()

	if s.DryRun {
		fmt.Fprintf(s.out(), "dry run: would commit %d file(s) for revision %s:\n", len(finalPaths), revisionID)
		for _, p := range finalPaths {
			fmt.Fprintf(s.out(), "  %s\n", p)
		}
		return nil
	}

	if err := s.VCS.Commit(ctx, finalPaths, message); err != nil {
		// no rollback, no retry: a second attempt without operator awareness
		// risks double-submission
		return err
	}
	slog.Info("committed", "revision", revisionID, "files", len(finalPaths))

	if s.MarkCommitted {
		// compensation for repositories without server-side hooks; the commit
		// itself already succeeded, so a failure here is only a warning
		if err := s.Service.MarkCommitted(ctx, revisionID); err != nil {
			slog.Warn("commit succeeded but the revision could not be marked committed; close it on the review server manually",
				"revision", revisionID, "error", err)
		}
	}

	return nil
}

// resolveRevision validates an explicit revision id against the committable
// set, or picks one when the id is empty.
func (s *Submitter) resolveRevision(ctx context.Context, revisionID string) (string, error) {
	revisions, err := s.Service.Committable(ctx, s.Owner)
	if err != nil {
		return "", err
	}

	if len(revisions) == 0 {
		return "", &UsageError{
			Msg:  fmt.Sprintf("no committable revisions for %s", s.Owner),
			Hint: "get the revision approved on the review server first",
		}
	}

	if revisionID != "" {
		for _, rev := range revisions {
			if rev.ID == revisionID {
				return revisionID, nil
			}
		}
		return "", &UsageError{
			Msg:  fmt.Sprintf("revision %s is not committable", revisionID),
			Hint: "run `landr revisions` to list committable revisions",
		}
	}

	if len(revisions) == 1 {
		slog.Info("using the only committable revision", "revision", revisions[0].ID, "title", revisions[0].Title)
		return revisions[0].ID, nil
	}

	if s.Picker == nil {
		return "", &UsageError{
			Msg:  fmt.Sprintf("%d revisions are committable", len(revisions)),
			Hint: "pass an explicit revision id",
		}
	}

	return s.Picker.Pick(revisions)
}

func (s *Submitter) out() io.Writer {
	if s.Out == nil {
		return io.Discard
	}
	return s.Out
}
