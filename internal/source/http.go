package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/raeve/gameboot/utils"
)

// HTTPSource streams a module over HTTP GET. The expected size comes from
// the Content-Length response header and is -1 when the header is absent.
type HTTPSource struct {
	URL    string
	client *http.Client
	cfg    utils.HTTPClientConfig
}

func NewHTTPSource(url string, client *http.Client, cfg utils.HTTPClientConfig) *HTTPSource {
	if client == nil {
		client = utils.NewHTTPClient(cfg)
	}
	return &HTTPSource{URL: url, client: client, cfg: cfg}
}

func (h *HTTPSource) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	log := utils.GetLogger("http-source")
	req, err := http.NewRequestWithContext(ctx, "GET", h.URL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating GET request: %v", err)
	}
	userAgent := h.cfg.UserAgent
	if userAgent == "" {
		userAgent = utils.ToolUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Connection", "keep-alive")
	for k, v := range h.cfg.Headers {
		req.Header.Set(k, v)
	}
	log.Debug().Str("url", h.URL).Msg("Starting module fetch")
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing GET request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	size := int64(-1)
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		if parsed, err := strconv.ParseInt(cl, 10, 64); err == nil {
			size = parsed
		}
	}
	if size < 0 {
		log.Debug().Str("url", h.URL).Msg("Server didn't provide Content-Length, progress fraction will be unknown")
	}
	return resp.Body, size, nil
}
