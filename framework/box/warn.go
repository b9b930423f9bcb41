package box

// Warner receives human-readable warnings about recoverable container
// anomalies: a registration key being overwritten, a child key being
// overwritten, or a lookup for a child that does not exist. The operation
// always completes; the warner only reports.
//
// A nil Warner is inert, which is the production default. Development builds
// typically wire a logger:
//
//	b.SetWarner(logging.BoxWarner(logger))
type Warner func(format string, args ...any)

// SetWarner installs the warning sink for this box. Children spawned
// afterwards inherit it.
func (b *Box) SetWarner(w Warner) {
	b.mu.Lock()
	b.warn = w
	b.mu.Unlock()
}

func (b *Box) warnf(format string, args ...any) {
	b.mu.RLock()
	warn := b.warn
	b.mu.RUnlock()

	if warn != nil {
		warn(format, args...)
	}
}
