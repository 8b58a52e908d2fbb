package useragent

import "regexp"

// BrowserPattern defines a pattern for detecting a browser
type BrowserPattern struct {
	Name      Browser
	Match     *regexp.Regexp
	Version   *regexp.Regexp
	OrderHint int
}

// Extract version from a user agent string using a regex
func extractVersion(signal string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(signal)
	if len(matches) > 1 {
		version := matches[1]
		// Limit version length to avoid excessively long versions
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

// Browser detection patterns in order of checking priority.
// Edge and Opera embed a full Chrome token and Chrome embeds a Safari token,
// so the more specific vendor must be tested first.
var browserPatterns = []BrowserPattern{
	{
		Name:      BrowserEdge,
		Match:     regexp.MustCompile(`(?i)edg(e|a|ios)?/`),
		Version:   regexp.MustCompile(`(?i)edg(?:e|a|ios)?/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserOpera,
		Match:     regexp.MustCompile(`(?i)opr/|opera`),
		Version:   regexp.MustCompile(`(?i)(?:opr|version|opera)[/ ]([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserIE,
		Match:     regexp.MustCompile(`(?i)msie |trident/`),
		Version:   regexp.MustCompile(`(?i)(?:msie |rv:)([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserFirefox,
		Match:     regexp.MustCompile(`(?i)firefox/|fxios/`),
		Version:   regexp.MustCompile(`(?i)(?:firefox|fxios)/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserChrome,
		Match:     regexp.MustCompile(`(?i)chrome/|crios/|chromium/`),
		Version:   regexp.MustCompile(`(?i)(?:chrome|crios|chromium)/([\d.]+)`),
		OrderHint: 50,
	},
	{
		Name:      BrowserSafari,
		Match:     regexp.MustCompile(`(?i)safari/`),
		Version:   regexp.MustCompile(`(?i)version/([\d.]+)`),
		OrderHint: 60,
	},
}

func matchBrowser(signal string) (BrowserPattern, bool) {
	for _, pattern := range browserPatterns {
		if pattern.Match.MatchString(signal) {
			return pattern, true
		}
	}
	return BrowserPattern{}, false
}

// ParseBrowser identifies the browser family; first match wins.
func ParseBrowser(signal string) Browser {
	if signal == "" {
		return BrowserUnknown
	}
	if pattern, ok := matchBrowser(signal); ok {
		return pattern.Name
	}
	return BrowserUnknown
}

// BrowserVersion extracts the version of the detected browser, or "".
func BrowserVersion(signal string) string {
	if signal == "" {
		return ""
	}
	if pattern, ok := matchBrowser(signal); ok {
		return extractVersion(signal, pattern.Version)
	}
	return ""
}
