package device

import (
	"sync"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// Detector holds an option set and a lazily computed Info snapshot.
//
// It has two states. Empty: no snapshot; the next Info call computes one.
// Computed: Info returns the held snapshot unchanged. Refresh recomputes
// unconditionally and SetOptions drops the snapshot without recomputing.
type Detector struct {
	classifier *Classifier

	mu   sync.Mutex
	opts Options
	info *Info
}

// NewDetector creates an empty Detector. A nil classifier gets a default one.
func NewDetector(c *Classifier, opts ...Option) *Detector {
	if c == nil {
		c = NewClassifier()
	}
	return &Detector{
		classifier: c,
		opts:       c.options(opts),
	}
}

// Info returns the snapshot, computing it first if the detector is empty.
func (d *Detector) Info() Info {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.info == nil {
		d.compute()
	}
	return *d.info
}

// Refresh discards the snapshot and computes a new one.
func (d *Detector) Refresh() Info {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.compute()
	return *d.info
}

// SetOptions merges opts into the held options and empties the detector.
// The snapshot is recomputed on the next Info call.
func (d *Detector) SetOptions(opts ...Option) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.opts = d.opts.with(opts...)
	d.info = nil
}

// Options returns the held option set.
func (d *Detector) Options() Options {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opts
}

// Computed reports whether a snapshot is held.
func (d *Detector) Computed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.info != nil
}

// Hybrid runs the confidence combiner with the held options.
func (d *Detector) Hybrid() HybridResult {
	d.mu.Lock()
	o := d.opts
	d.mu.Unlock()

	return d.classifier.hybrid(o)
}

// Must be called with lock held.
func (d *Detector) compute() {
	info := d.classifier.snapshot(d.opts)
	d.info = &info
	d.classifier.logger.Debug("device info computed",
		logger.Component("device"),
		logger.Signal(info.RawSignal),
		logger.DeviceType(string(info.DeviceType)),
	)
}
