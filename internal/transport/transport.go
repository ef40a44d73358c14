package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	myErr "teranga-storefront/internal/types/errors"
)

const maxErrorBody = 64 << 10

// doJSON отправляет запрос и, если out != nil, декодирует JSON-ответ.
// Ответ не из 2xx превращается в *myErr.ServerError с полем detail из тела.
func doJSON(ctx context.Context, client *http.Client, method, url string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, url, err)
	}

	return nil
}

func parseErrorResponse(resp *http.Response) error {
	srvErr := &myErr.ServerError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return srvErr
	}

	// тело может быть не JSON (прокси, балансировщик) - тогда detail пустой
	var payload myErr.ErrorServer
	if json.Unmarshal(data, &payload) == nil {
		srvErr.Detail = strings.TrimSpace(payload.Detail)
	}

	return srvErr
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + path
}
