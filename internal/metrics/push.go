// Package metrics exports transfer metrics from short-lived commands.
// A command exits before any scraper could reach it, so the registry is
// pushed to a Prometheus Pushgateway once, right before exit.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push replaces the metrics grouped under job on the Pushgateway at url
// with the current contents of g. An empty url is a no-op.
func Push(ctx context.Context, url, job string, g prometheus.Gatherer) error {
	if url == "" {
		return nil
	}
	if err := push.New(url, job).Gatherer(g).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
