// Package useragent classifies user-agent strings into closed taxonomies using
// ordered regular-expression cascades.
//
// It identifies:
//   - Device type – mobile, tablet or desktop
//   - Operating system – Windows, macOS, Linux, Android, iOS or unknown
//   - Browser – Chrome, Firefox, Safari, Edge, IE, Opera or unknown
//
// Every function is total: an empty or unrecognised signal yields desktop,
// OSUnknown and BrowserUnknown instead of an error. Unknown therefore means
// either "nothing matched" or "there was nothing to match"; the package does
// not distinguish the two.
//
// # Architecture
//
// Each taxonomy has its own cascade where the first match wins. Order matters
// because tokens overlap:
//
//	device.go   phone pattern minus the ChromeOS override, tablet pattern on request
//	os.go       iOS and Android before Windows, macOS and Linux
//	browser.go  Edge and Opera before Chrome, Chrome before Safari
//
// Tablets are defined as a set difference: a signal is a tablet when it is
// mobile with tablets included but not mobile without them. An Android phone
// carries both "android" and "mobile" and so remains a phone.
//
// # Usage
//
//	ua := useragent.Parse(r.UserAgent())
//	log.Printf("client=%s", ua.GetShortIdentifier())
//
//	if useragent.IsMobile(r.UserAgent(), true) {
//	    // serve touch-optimised assets
//	}
//
// Callers that memoize classification depend on the Matcher interface;
// Patterns is the default implementation backed by the package functions.
package useragent
