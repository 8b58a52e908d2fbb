package useragent

import "regexp"

type osPattern struct {
	os    OS
	regex *regexp.Regexp
}

// OS patterns in order of checking priority. Handheld systems come first:
// iOS signals contain "like Mac OS X" and Android signals contain "Linux".
var osPatterns = []osPattern{
	{os: OSiOS, regex: regexp.MustCompile(`(?i)iphone|ipad|ipod`)},
	{os: OSAndroid, regex: regexp.MustCompile(`(?i)android`)},
	{os: OSWindows, regex: regexp.MustCompile(`(?i)windows|win(32|64)`)},
	{os: OSMacOS, regex: regexp.MustCompile(`(?i)macintosh|mac os x`)},
	{os: OSLinux, regex: regexp.MustCompile(`(?i)linux|x11`)},
	{os: OSLinux, regex: regexp.MustCompile(`\bCrOS\b`)},
}

// ParseOS identifies the operating system family; first match wins.
func ParseOS(signal string) OS {
	if signal == "" {
		return OSUnknown
	}

	for _, p := range osPatterns {
		if p.regex.MatchString(signal) {
			return p.os
		}
	}

	return OSUnknown
}
