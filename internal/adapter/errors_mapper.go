package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into a sentinel error. Client errors
// are permanent except 408 and 429; server errors are transient.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return utils.Permanent(fmt.Errorf("%w: %s", ErrBadRequest, body))
	case http.StatusUnauthorized:
		return utils.Permanent(fmt.Errorf("%w: %s", ErrUnauthorized, body))
	case http.StatusForbidden:
		return utils.Permanent(fmt.Errorf("%w: %s", ErrForbidden, body))
	case http.StatusNotFound:
		return utils.Permanent(fmt.Errorf("%w: %s", ErrNotFound, body))
	case http.StatusConflict:
		return utils.Permanent(fmt.Errorf("%w: %s", ErrConflict, body))
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrUnavailable, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	err := fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	if resp.StatusCode() < http.StatusInternalServerError {
		return utils.Permanent(err)
	}
	return err
}
