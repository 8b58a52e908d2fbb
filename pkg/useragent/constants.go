package useragent

// DeviceType is the form-factor class of a device.
type DeviceType string

// Device types form a closed set; every signal maps to exactly one of them.
const (
	// DeviceTypeMobile identifies phones and other handheld devices
	DeviceTypeMobile DeviceType = "mobile"

	// DeviceTypeTablet identifies tablets (iPad, Android tablets, PlayBook, Silk)
	DeviceTypeTablet DeviceType = "tablet"

	// DeviceTypeDesktop identifies everything that is neither mobile nor tablet,
	// including absent signals
	DeviceTypeDesktop DeviceType = "desktop"
)

// OS is an operating system family.
type OS string

// Operating system identifiers
const (
	// OSWindows identifies Microsoft Windows, including Windows Phone
	OSWindows OS = "windows"

	// OSMacOS identifies Apple macOS
	OSMacOS OS = "macos"

	// OSLinux identifies Linux-based desktop systems, including ChromeOS
	OSLinux OS = "linux"

	// OSAndroid identifies Google Android
	OSAndroid OS = "android"

	// OSiOS identifies Apple iOS and iPadOS
	OSiOS OS = "ios"

	// OSUnknown is used when the operating system cannot be determined,
	// and also when there was no signal at all
	OSUnknown OS = "unknown"
)

// Browser is a browser family.
type Browser string

// Browser identifiers
const (
	// BrowserChrome identifies Google Chrome and Chromium
	BrowserChrome Browser = "chrome"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox Browser = "firefox"

	// BrowserSafari identifies Apple Safari
	BrowserSafari Browser = "safari"

	// BrowserEdge identifies Microsoft Edge (legacy and Chromium-based)
	BrowserEdge Browser = "edge"

	// BrowserIE identifies Internet Explorer
	BrowserIE Browser = "ie"

	// BrowserOpera identifies Opera (Presto and Chromium-based)
	BrowserOpera Browser = "opera"

	// BrowserUnknown is used when the browser cannot be determined,
	// and also when there was no signal at all
	BrowserUnknown Browser = "unknown"
)
