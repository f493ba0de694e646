package reviewsdk

import (
	"context"

	"github.com/imroc/req/v3"
)

const (
	v1Revisions     = "/api/v1/revisions"
	v1Paths         = "/api/v1/revisions/{id}/paths"
	v1Message       = "/api/v1/revisions/{id}/message"
	v1MarkCommitted = "/api/v1/revisions/{id}/committed"
)

type RevisionsAPI struct {
	client *req.Client
}

func newRevisionsAPI(client *req.Client) *RevisionsAPI {
	return &RevisionsAPI{
		client: client,
	}
}

// Committable returns the owner's committable revisions, in server order.
func (r *RevisionsAPI) Committable(ctx context.Context, owner string) ([]RevisionRef, error) {
	if owner == "" {
		return nil, ErrNoOwner
	}

	var resp committableResponse
	res, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("owner", owner).
		SetQueryParam("state", "committable").
		SetSuccessResult(&resp).
		Get(v1Revisions)

	if err := handleAPIError(res, err, "committable revisions"); err != nil {
		return nil, err
	}

	return resp.Revisions, nil
}

// DeclaredPaths returns the authoritative path set the revision is supposed to touch.
func (r *RevisionsAPI) DeclaredPaths(ctx context.Context, revisionID string) ([]string, error) {
	if revisionID == "" {
		return nil, ErrNoRevision
	}

	var resp declaredPathsResponse
	res, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", revisionID).
		SetSuccessResult(&resp).
		Get(v1Paths)

	if err := handleAPIError(res, err, "declared paths"); err != nil {
		return nil, err
	}

	return resp.Paths, nil
}

// CommitMessage returns the rendered commit message for the revision. The
// server renders it as UTF-8; callers must keep that encoding through to the
// VCS commit.
func (r *RevisionsAPI) CommitMessage(ctx context.Context, revisionID string) (string, error) {
	if revisionID == "" {
		return "", ErrNoRevision
	}

	var resp commitMessageResponse
	res, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", revisionID).
		SetSuccessResult(&resp).
		Get(v1Message)

	if err := handleAPIError(res, err, "commit message"); err != nil {
		return "", err
	}

	return resp.Message, nil
}

// MarkCommitted tells the server the revision has landed. Used when the
// repository has no server-side hook doing this automatically.
func (r *RevisionsAPI) MarkCommitted(ctx context.Context, revisionID string) error {
	if revisionID == "" {
		return ErrNoRevision
	}

	res, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", revisionID).
		Post(v1MarkCommitted)

	return handleAPIError(res, err, "mark committed")
}
