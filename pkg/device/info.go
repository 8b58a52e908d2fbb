package device

import "github.com/dmitrymomot/devicekit/pkg/useragent"

// Info is an immutable snapshot of everything known about a client.
// IsMobile, IsTablet and IsDesktop partition devices: exactly one is true.
type Info struct {
	DeviceType     useragent.DeviceType `json:"device_type" yaml:"device_type"`
	OS             useragent.OS         `json:"os" yaml:"os"`
	Browser        useragent.Browser    `json:"browser" yaml:"browser"`
	BrowserVersion string               `json:"browser_version,omitempty" yaml:"browser_version,omitempty"`
	IsMobile       bool                 `json:"is_mobile" yaml:"is_mobile"`
	IsTablet       bool                 `json:"is_tablet" yaml:"is_tablet"`
	IsDesktop      bool                 `json:"is_desktop" yaml:"is_desktop"`
	IsTouchDevice  bool                 `json:"is_touch_device" yaml:"is_touch_device"`
	Screen         Screen               `json:"screen" yaml:"screen"`
	RawSignal      string               `json:"raw_signal" yaml:"raw_signal"`
}

// String returns a short human-readable identifier such as
// "Chrome/91.0 (Android, mobile)".
func (i Info) String() string {
	return useragent.New(i.RawSignal, i.DeviceType, i.OS, i.Browser, i.BrowserVersion).GetShortIdentifier()
}

// Snapshot computes a fresh Info for the given options. Pattern verdicts come
// from the cache; the feature prober contributes only the touch flag, hybrid
// merging is not applied (see Hybrid).
func (c *Classifier) Snapshot(opts ...Option) Info {
	return c.snapshot(c.options(opts))
}

func (c *Classifier) snapshot(o Options) Info {
	sig := ResolveSignal(o.UA, c.env)

	tablet := c.isTablet(o)
	mobile := !tablet && c.isMobile(o.with(WithTablet(false)))

	deviceType := useragent.DeviceTypeDesktop
	switch {
	case tablet:
		deviceType = useragent.DeviceTypeTablet
	case mobile:
		deviceType = useragent.DeviceTypeMobile
	}

	return Info{
		DeviceType:     deviceType,
		OS:             c.os(o),
		Browser:        c.browser(o),
		BrowserVersion: useragent.BrowserVersion(sig.Value()),
		IsMobile:       mobile,
		IsTablet:       tablet,
		IsDesktop:      c.isDesktop(o),
		IsTouchDevice:  c.env.TouchCapable(),
		Screen:         c.env.screen(),
		RawSignal:      sig.Value(),
	}
}
