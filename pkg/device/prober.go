package device

import "github.com/dmitrymomot/devicekit/pkg/useragent"

// Screen thresholds in CSS pixels. They are empirical and kept as-is.
const (
	PhoneMaxShortSide    = 768
	PhoneMaxLongSide     = 1024
	TabletMaxShortSide   = 1024
	DensityBandMin       = 480
	HighDensityThreshold = 2.0
)

// Rule names which row of the probe decision table produced a verdict.
type Rule string

const (
	RuleNone              Rule = ""
	RuleNoTouch           Rule = "no_touch"
	RulePhoneScreen       Rule = "phone_screen"
	RuleTabletScreen      Rule = "tablet_screen"
	RulePixelDensity      Rule = "pixel_density"
	RuleDesktopMasquerade Rule = "desktop_masquerade"
)

// Verdict is the feature prober's independent opinion. When Decided is false
// the prober defers to pattern classification and Mobile and Tablet are false.
type Verdict struct {
	Decided bool
	Mobile  bool
	Tablet  bool
	Rule    Rule
}

func phone(rule Rule) Verdict  { return Verdict{Decided: true, Mobile: true, Rule: rule} }
func tablet(rule Rule) Verdict { return Verdict{Decided: true, Tablet: true, Rule: rule} }

// Probe classifies a device from live environment metrics. The decision table
// is evaluated in order:
//
//  1. no touch support: undecided
//  2. short side < 768 and long side < 1024: phone
//  3. 768 <= short side <= 1024: tablet
//  4. 480 < short side < 768: phone when pixel ratio >= 2, tablet otherwise
//  5. several touch points with a desktop Safari signal: tablet
//
// A nil environment is undecided.
func Probe(env *Environment, signal Signal) Verdict {
	if !env.TouchCapable() {
		return Verdict{Rule: RuleNoTouch}
	}

	short, long := env.Screen.ShortSide(), env.Screen.LongSide()
	switch {
	case short > 0 && short < PhoneMaxShortSide && long < PhoneMaxLongSide:
		return phone(RulePhoneScreen)
	case short >= PhoneMaxShortSide && short <= TabletMaxShortSide:
		return tablet(RuleTabletScreen)
	case short > DensityBandMin && short < PhoneMaxShortSide:
		if env.Screen.PixelRatio >= HighDensityThreshold {
			return phone(RulePixelDensity)
		}
		return tablet(RulePixelDensity)
	}

	if env.TouchPoints > 1 && useragent.MasqueradesAsDesktop(signal.Value()) {
		return tablet(RuleDesktopMasquerade)
	}

	return Verdict{Rule: RuleNone}
}
