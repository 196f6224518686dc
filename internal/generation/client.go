// Package generation calls the external text and image generation services.
package generation

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"content-planner/internal/apperrors"
)

type response struct {
	Status      int
	Body        []byte
	ContentType string
}

// postJSON sends one JSON POST with the fiber client. A zero timeout leaves
// the transport default in place unless ctx carries a deadline.
func postJSON(ctx context.Context, service, url string, headers map[string]string, payload any, timeout time.Duration) (response, error) {
	if err := ctx.Err(); err != nil {
		return response{}, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}

	a := fiber.Post(url)
	for k, v := range headers {
		a.Set(k, v)
	}
	a.JSON(payload)
	if timeout > 0 {
		a.Timeout(timeout)
	}

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	a.SetResponse(resp)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return response{}, &apperrors.RemoteError{Service: service, Err: errors.Join(errs...)}
	}
	return response{
		Status:      code,
		Body:        body,
		ContentType: string(resp.Header.ContentType()),
	}, nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
