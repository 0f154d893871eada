package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/agentstation/seedmap/pkg/errors"
)

// ReadBody reads at most limit bytes of a successful response and closes
// it. Non-2xx responses become a FetchError carrying the status code.
func ReadBody(resp *http.Response, source string, limit int64) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, errors.NewFetchError(source, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.WrapIO("read", source, err)
	}
	if int64(len(body)) > limit {
		return nil, &errors.FetchError{
			Source:  source,
			Message: fmt.Sprintf("response exceeds %d bytes", limit),
		}
	}
	return body, nil
}
