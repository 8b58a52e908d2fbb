package useragent

import (
	"regexp"
	"strings"
)

// Device class patterns. They are evaluated as a fixed cascade because several
// tokens are substrings of one another (an Android tablet matches "android"
// but a phone additionally carries "mobile").
var (
	phonePattern = regexp.MustCompile(`(?i)(android|bb\d+|meego).+mobile|armv7l|avantgo|bada/|blackberry|blazer|compal|elaine|fennec|hiptop|iemobile|ip(hone|od)|iris|kindle|lge |maemo|midp|mmp|mobile.+firefox|netfront|opera m(ob|in)i|palm( os)?|phone|p(ixi|re)/|plucker|pocket|psp|series[46]0|samsungbrowser.*mobile|symbian|treo|up\.(browser|link)|vodafone|wap|windows (ce|phone)|xda|xiino`)

	// ChromeOS reports itself with phone-like tokens on some convertibles.
	desktopOverridePattern = regexp.MustCompile(`CrOS`)

	tabletPattern = regexp.MustCompile(`(?i)android|ipad|playbook|silk`)

	// Engines other than Safari that would rule out an iPad in desktop mode.
	nonSafariEnginePattern = regexp.MustCompile(`(?i)chrome|crios|firefox|fxios|edg|opr/|opera`)
)

// desktopToken is reported by iPadOS 13+ Safari in its default desktop mode.
const desktopToken = "Macintosh"

// IsMobile reports whether the signal belongs to a phone. With tablet set,
// tablets count as mobile too.
func IsMobile(signal string, tablet bool) bool {
	if signal == "" {
		return false
	}
	if phonePattern.MatchString(signal) && !desktopOverridePattern.MatchString(signal) {
		return true
	}
	return tablet && tabletPattern.MatchString(signal)
}

// IsTablet reports whether the signal is mobile only when tablets are
// included. A signal matching both the phone and the tablet patterns is a
// phone here, and a tablet in IsMobile(signal, true).
func IsTablet(signal string) bool {
	return IsMobile(signal, true) && !IsMobile(signal, false)
}

// IsDesktop is the complement of IsMobile with tablets included.
func IsDesktop(signal string) bool {
	return !IsMobile(signal, true)
}

// ParseDeviceType partitions signals into mobile, tablet and desktop.
func ParseDeviceType(signal string) DeviceType {
	switch {
	case IsTablet(signal):
		return DeviceTypeTablet
	case IsMobile(signal, false):
		return DeviceTypeMobile
	default:
		return DeviceTypeDesktop
	}
}

// HasDesktopToken reports whether the signal carries the desktop-class token
// that iPadOS Safari sends by default.
func HasDesktopToken(signal string) bool {
	return strings.Contains(signal, desktopToken)
}

// MasqueradesAsDesktop reports whether a signal looks like desktop Safari:
// the desktop token plus Safari, with no other mainstream engine token.
// Combined with multi-touch this identifies iPads requesting desktop sites.
func MasqueradesAsDesktop(signal string) bool {
	return HasDesktopToken(signal) &&
		strings.Contains(signal, "Safari") &&
		!nonSafariEnginePattern.MatchString(signal)
}
