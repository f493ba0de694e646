// Package reviewsdk is the HTTP client for the review server API.
package reviewsdk

import (
	"time"

	"github.com/imroc/req/v3"
)

// ReviewSDK is the main client for interacting with the review server.
type ReviewSDK struct {
	client    *req.Client
	baseURL   string
	Revisions *RevisionsAPI
}

// New creates a new ReviewSDK client for the given server base URL.
func New(baseURL string) (*ReviewSDK, error) {
	if baseURL == "" {
		return nil, ErrNoServerURL
	}

	client := req.C().
		SetBaseURL(baseURL).
		SetCommonRetryCount(3).
		SetCommonRetryFixedInterval(1*time.Second).
		SetUserAgent(UserAgent).
		SetCommonErrorResult(&APIError{}).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &ReviewSDK{
		client:    client,
		baseURL:   baseURL,
		Revisions: newRevisionsAPI(client),
	}, nil
}

// Close terminates all connections and cleans up resources.
func (s *ReviewSDK) Close() {
	s.client.GetClient().CloseIdleConnections()
}
