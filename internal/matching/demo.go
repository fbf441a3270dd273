package matching

import (
	"context"
	_ "embed"
)

//go:embed demo_report.json
var demoReport []byte

// demoClient implements Client without network I/O. Every call returns the
// same embedded report, which satisfies the full response schema for the
// two-JD preview scenario.
type demoClient struct{}

func newDemoClient() *demoClient {
	return &demoClient{}
}

func (c *demoClient) CreateReport(_ context.Context, _ *Payload) (string, error) {
	return string(demoReport), nil
}

func (c *demoClient) Close() error {
	return nil
}
