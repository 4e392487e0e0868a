package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors for the HTTP status categories the Plane API returns.
// Callers can match them with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
)

func mapStatusError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: check your API key", ErrUnauthorized)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: try again later", ErrRateLimited)
	case code >= 500 && code <= 599:
		return fmt.Errorf("%w (%d): %s", ErrServer, code, body)
	default:
		return fmt.Errorf("request failed (%d): %s", code, body)
	}
}
