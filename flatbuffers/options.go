package flatbuffers

import (
	"go.uber.org/zap"
)

// BuilderOption configures a Builder created by NewBuilder.
type BuilderOption func(*Builder)

// WithAllocator makes the builder take its backing memory from a.
func WithAllocator(a Allocator) BuilderOption {
	return func(b *Builder) {
		if a != nil {
			b.alloc = a
		}
	}
}

// WithLogger attaches a logger. The builder only logs at debug level:
// buffer growth and rejected construction steps.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithForceDefaults sets the initial ForceDefaults mode.
func WithForceDefaults(force bool) BuilderOption {
	return func(b *Builder) {
		b.forceDefaults = force
	}
}
