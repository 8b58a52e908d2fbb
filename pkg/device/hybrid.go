package device

// Method tells how a HybridResult was produced.
type Method string

const (
	MethodSignalOnly Method = "signal-only"
	MethodHybrid     Method = "hybrid"
)

// Confidence levels. They rank agreement between methods and are not
// calibrated probabilities.
const (
	ConfidenceSignalOnly = 0.7
	ConfidenceHybrid     = 0.8
	ConfidenceAgreement  = 0.95
)

// HybridResult merges pattern and feature-probe verdicts.
type HybridResult struct {
	IsMobile   bool    `json:"is_mobile" yaml:"is_mobile"`
	IsTablet   bool    `json:"is_tablet" yaml:"is_tablet"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Method     Method  `json:"method" yaml:"method"`
	Rule       Rule    `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// Hybrid classifies with both methods. Without FeatureDetect or a live
// environment it returns the pattern verdict at ConfidenceSignalOnly.
// Otherwise each flag is the OR of both verdicts, so a positive from either
// method is kept. Confidence is ConfidenceAgreement when both verdicts match
// and ConfidenceHybrid when they differ.
//
// The probe verdict follows the tablet mode of the options: with tablets
// included, a probed tablet is also mobile.
func (c *Classifier) Hybrid(opts ...Option) HybridResult {
	return c.hybrid(c.options(opts))
}

func (c *Classifier) hybrid(o Options) HybridResult {
	patternMobile := c.isMobile(o)
	patternTablet := c.isTablet(o)

	if !o.FeatureDetect || c.env == nil {
		return HybridResult{
			IsMobile:   patternMobile,
			IsTablet:   patternTablet,
			Confidence: ConfidenceSignalOnly,
			Method:     MethodSignalOnly,
		}
	}

	v := c.probe(o)
	probeMobile := v.Mobile || (o.Tablet && v.Tablet)
	probeTablet := v.Tablet

	res := HybridResult{
		IsMobile:   patternMobile || probeMobile,
		IsTablet:   patternTablet || probeTablet,
		Confidence: ConfidenceHybrid,
		Method:     MethodHybrid,
		Rule:       v.Rule,
	}
	if patternMobile == probeMobile && patternTablet == probeTablet {
		res.Confidence = ConfidenceAgreement
	}
	return res
}
