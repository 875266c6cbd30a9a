package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/blastbao/flatbuf/flatbuffers"
)

const (
	defaultBucket  = "flatbuffers"
	defaultTimeout = time.Second
)

// Config configures a Store. Only Path is required.
type Config struct {
	// Path of the BoltDB file, created if missing.
	Path string
	// Bucket holding the records. Defaults to "flatbuffers".
	Bucket string
	// Timeout waiting for the file lock on open. Defaults to one second.
	Timeout time.Duration
	// NoSync skips fsync after each commit.
	NoSync bool

	// FileIdentifier, if set, is written by Build and required by View and
	// Mutate.
	FileIdentifier string
	// BuilderOptions apply to the builders used by Build.
	BuilderOptions []flatbuffers.BuilderOption

	Logger *zap.Logger
	// Registerer receives the store metrics. Metrics are not exported when
	// nil.
	Registerer prometheus.Registerer
}

func (c *Config) applyDefaults() {
	if c.Bucket == "" {
		c.Bucket = defaultBucket
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
