// Package httpaction provides an HTTP GET action.
package httpaction

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

// Get fetches a URL and publishes the response body as a string output.
// The URL is either a literal or the string output of another node.
type Get struct {
	url    runtime.Input[string]
	client *http.Client
}

// New creates a Get action for a literal URL.
func New(url string) *Get {
	return &Get{
		url:    runtime.NewStaticInput(url),
		client: defaultClient(),
	}
}

// NewFrom creates a Get action whose URL is resolved from the producer
// node's output. The caller must still declare the dependency edge with
// Requires.
func NewFrom(producer *runtime.Node) *Get {
	return &Get{
		url:    runtime.NewDynamicInput[string](producer),
		client: defaultClient(),
	}
}

// WithClient replaces the HTTP client, for callers needing custom
// transports or timeouts.
func (a *Get) WithClient(client *http.Client) *Get {
	if client != nil {
		a.client = client
	}
	return a
}

func defaultClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

var _ runtime.Action = (*Get)(nil)

// Probe implements runtime.Action.
func (a *Get) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *Get) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		return nil, barleyerrors.ErrOperationNotSupported
	}

	url, err := runtime.ResolveString(rt, a.url)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("invalid URL %s", url),
			err.Error(),
		)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("failed to GET %s", url),
			err.Error(),
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("failed to read response body from %s", url),
			err.Error(),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("GET %s returned %s", url, resp.Status),
			string(body),
		)
	}

	out := runtime.StringOutput(string(body))
	return &out, nil
}

// DisplayName implements runtime.Action.
func (a *Get) DisplayName() string {
	if url, ok := a.url.StaticValue(); ok {
		return fmt.Sprintf("GET %s", url)
	}
	return "GET <dynamic url>"
}
