// Package source resolves module URLs to byte streams. HTTP(S) and S3
// payloads are supported.
package source

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/raeve/gameboot/utils"
)

// Source opens a module payload, returning the body stream and the
// expected size in bytes (-1 when the server does not report one).
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, int64, error)
}

// Resolve picks a source implementation by URL scheme.
func Resolve(rawURL string, client *http.Client, cfg utils.HTTPClientConfig) (Source, error) {
	if strings.HasPrefix(rawURL, "s3://") {
		return NewS3Source(rawURL)
	}
	return NewHTTPSource(rawURL, client, cfg), nil
}
