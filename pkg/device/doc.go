// Package device detects the class of a client device (mobile, tablet or
// desktop), its operating system and browser, and whether it supports touch.
//
// Classification combines two independent methods:
//
//   - Pattern classification of a user-agent signal (package useragent),
//     memoized in a TTL cache owned by the Classifier.
//   - Feature probing of a live Environment (screen metrics, pixel ratio,
//     touch points), enabled per call with WithFeatureDetect.
//
// Hybrid merges both verdicts and scores their agreement. Detector holds an
// option set and a lazily computed Info snapshot.
//
// # Architecture
//
//	Detector ──► Classifier ──► TTL cache ──► useragent.Matcher
//	                 │
//	                 ├──► Probe(Environment)
//	                 └──► Hybrid
//
// # Signal resolution
//
// Every call resolves its signal once with ResolveSignal: an explicit string
// from WithUAString, then the User-Agent field of a header source
// (FromHeader, FromRequest), then Environment.UserAgent, then absent.
//
// # Failure semantics
//
// Nothing in this package returns an error except LoadConfig. An absent
// signal classifies as desktop with useragent.OSUnknown and
// useragent.BrowserUnknown; malformed sources are treated as absent. Unknown
// does not tell "unrecognised" apart from "no signal"; check Signal.Present
// when the difference matters.
//
// # Usage
//
//	c := device.NewClassifier(device.WithCacheTTL(time.Minute))
//
//	if c.IsMobile(device.WithUA(device.FromRequest(r)), device.WithTablet(true)) {
//	    // touch layout
//	}
//
//	d := device.NewDetector(c, device.WithUAString(ua))
//	info := d.Info() // computed once, then served from the detector
//	d.SetOptions(device.WithTablet(true))
//	info = d.Info() // recomputed
//
// In HTTP services Middleware stores an Info per request, readable with
// FromContext; LogExtractor adds its device type to log records.
//
// # Concurrency
//
// Classifier and Detector are safe for concurrent use. No operation blocks on
// I/O, so none takes a context.
package device
