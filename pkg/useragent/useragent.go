package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher is the pattern engine behind classification. The package-level
// functions are exposed through Patterns; callers that memoize results accept
// a Matcher so the engine can be swapped or instrumented.
type Matcher interface {
	IsMobile(signal string, tablet bool) bool
	ParseOS(signal string) OS
	ParseBrowser(signal string) Browser
}

// Patterns is the default regex-based Matcher.
type Patterns struct{}

var _ Matcher = Patterns{}

func (Patterns) IsMobile(signal string, tablet bool) bool { return IsMobile(signal, tablet) }
func (Patterns) ParseOS(signal string) OS                 { return ParseOS(signal) }
func (Patterns) ParseBrowser(signal string) Browser       { return ParseBrowser(signal) }

// UserAgent contains the classification of a single signal
type UserAgent struct {
	// Raw signal
	userAgent string

	deviceType DeviceType
	os         OS
	browser    Browser
	browserVer string
}

// String returns the raw signal
func (ua UserAgent) String() string { return ua.userAgent }

// DeviceType returns the device type (mobile, tablet, desktop)
func (ua UserAgent) DeviceType() DeviceType { return ua.deviceType }

// OS returns the operating system family
func (ua UserAgent) OS() OS { return ua.os }

// Browser returns the browser family
func (ua UserAgent) Browser() Browser { return ua.browser }

// BrowserVer returns the browser version, if one could be extracted
func (ua UserAgent) BrowserVer() string { return ua.browserVer }

func (ua UserAgent) IsMobile() bool  { return ua.deviceType == DeviceTypeMobile }
func (ua UserAgent) IsTablet() bool  { return ua.deviceType == DeviceTypeTablet }
func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }

// Parse classifies a signal. It never fails: an empty or unrecognised signal
// yields desktop with unknown OS and browser.
func Parse(signal string) UserAgent {
	return New(signal, ParseDeviceType(signal), ParseOS(signal), ParseBrowser(signal), BrowserVersion(signal))
}

// New creates a new UserAgent with the provided parameters
func New(signal string, deviceType DeviceType, os OS, browser Browser, browserVer string) UserAgent {
	return UserAgent{
		userAgent:  signal,
		deviceType: deviceType,
		os:         os,
		browser:    browser,
		browserVer: browserVer,
	}
}

// FormatOS returns a display name for an OS.
func FormatOS(os OS) string {
	switch os {
	case "", OSUnknown:
		return "Unknown OS"
	case OSiOS:
		return "iOS"
	case OSMacOS:
		return "macOS"
	}
	return cases.Title(language.English).String(string(os))
}

// FormatBrowser returns a display name for a browser.
func FormatBrowser(browser Browser) string {
	switch browser {
	case "", BrowserUnknown:
		return "Unknown"
	case BrowserIE:
		return "IE"
	}
	return cases.Title(language.English).String(string(browser))
}

// formatBrowserVersion keeps the major.minor part of long versions
func formatBrowserVersion(version string) string {
	if version == "" {
		return "?"
	}
	parts := strings.Split(version, ".")
	if len(parts) > 2 {
		return parts[0] + "." + parts[1]
	}
	return version
}

// GetShortIdentifier returns a short human-readable identifier.
// Format: Browser/Version (OS, device type).
func (ua UserAgent) GetShortIdentifier() string {
	if ua.userAgent == "" {
		return "Unknown device"
	}

	if ua.browser == "" || ua.browser == BrowserUnknown {
		return fmt.Sprintf("%s %s", FormatOS(ua.os), ua.deviceType)
	}

	return fmt.Sprintf("%s/%s (%s, %s)",
		FormatBrowser(ua.browser),
		formatBrowserVersion(ua.browserVer),
		FormatOS(ua.os),
		ua.deviceType,
	)
}
