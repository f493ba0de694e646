package reviewsdk

import (
	"fmt"
	"runtime"

	"github.com/reviewlab/landr/internal/version"
)

const (
	HeaderUserAgent = "User-Agent"
)

var UserAgent = fmt.Sprintf("landr/%s (%s; %s; %s)", version.Version, version.Revision, runtime.GOOS, runtime.GOARCH)

// RevisionRef identifies one committable revision, as listed by the server.
type RevisionRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type committableResponse struct {
	Revisions []RevisionRef `json:"revisions"`
}

type declaredPathsResponse struct {
	Paths []string `json:"paths"`
}

type commitMessageResponse struct {
	Message string `json:"message"`
}
