package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

var (
	phoneEnv  = &device.Environment{TouchPoints: 5, Screen: device.Screen{Width: 390, Height: 844, PixelRatio: 3}}
	tabletEnv = &device.Environment{TouchPoints: 5, Screen: device.Screen{Width: 820, Height: 1180, PixelRatio: 2}}
	noTouch   = &device.Environment{Screen: device.Screen{Width: 1920, Height: 1080, PixelRatio: 1}}
)

func TestHybrid_SignalOnly(t *testing.T) {
	t.Parallel()

	t.Run("feature detection disabled", func(t *testing.T) {
		t.Parallel()
		c := device.NewClassifier(device.WithEnvironment(tabletEnv))

		for _, ua := range testSignals {
			res := c.Hybrid(device.WithUAString(ua))
			assert.Equal(t, device.MethodSignalOnly, res.Method)
			assert.Equal(t, device.ConfidenceSignalOnly, res.Confidence)
			assert.Equal(t, c.IsMobile(device.WithUAString(ua)), res.IsMobile)
			assert.Equal(t, c.IsTablet(device.WithUAString(ua)), res.IsTablet)
		}
	})

	t.Run("no live environment", func(t *testing.T) {
		t.Parallel()
		c := device.NewClassifier()

		res := c.Hybrid(device.WithUAString(iPhoneUA), device.WithFeatureDetect(true))
		assert.Equal(t, device.HybridResult{
			IsMobile:   true,
			Confidence: device.ConfidenceSignalOnly,
			Method:     device.MethodSignalOnly,
		}, res)
	})
}

func TestHybrid_FeatureDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  *device.Environment
		opts []device.Option
		want device.HybridResult
	}{
		{
			name: "phone signal on phone screen agrees",
			env:  phoneEnv,
			opts: []device.Option{device.WithUAString(iPhoneUA)},
			want: device.HybridResult{IsMobile: true, Confidence: device.ConfidenceAgreement, Method: device.MethodHybrid, Rule: device.RulePhoneScreen},
		},
		{
			name: "desktop signal without touch agrees",
			env:  noTouch,
			opts: []device.Option{device.WithUAString(chromeWindowsUA)},
			want: device.HybridResult{Confidence: device.ConfidenceAgreement, Method: device.MethodHybrid, Rule: device.RuleNoTouch},
		},
		{
			name: "desktop signal on tablet screen keeps the positive",
			env:  tabletEnv,
			opts: []device.Option{device.WithUAString(chromeWindowsUA)},
			want: device.HybridResult{IsTablet: true, Confidence: device.ConfidenceHybrid, Method: device.MethodHybrid, Rule: device.RuleTabletScreen},
		},
		{
			name: "phone signal without touch keeps the positive",
			env:  noTouch,
			opts: []device.Option{device.WithUAString(samsungPhoneUA)},
			want: device.HybridResult{IsMobile: true, Confidence: device.ConfidenceHybrid, Method: device.MethodHybrid, Rule: device.RuleNoTouch},
		},
		{
			name: "tablet signal on tablet screen in tablet mode agrees",
			env:  tabletEnv,
			opts: []device.Option{device.WithUAString(iPadUA), device.WithTablet(true)},
			want: device.HybridResult{IsMobile: true, IsTablet: true, Confidence: device.ConfidenceAgreement, Method: device.MethodHybrid, Rule: device.RuleTabletScreen},
		},
		{
			name: "desktop safari on touch tablet in tablet mode agrees",
			env:  &device.Environment{TouchPoints: 5, Screen: device.Screen{Width: 1024, Height: 1366, PixelRatio: 2}},
			opts: []device.Option{device.WithUAString(safariMacUA), device.WithTablet(true)},
			want: device.HybridResult{IsMobile: true, IsTablet: true, Confidence: device.ConfidenceAgreement, Method: device.MethodHybrid, Rule: device.RuleTabletScreen},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := device.NewClassifier(device.WithEnvironment(tt.env))
			res := c.Hybrid(append(tt.opts, device.WithFeatureDetect(true))...)
			assert.Equal(t, tt.want, res)
			assert.GreaterOrEqual(t, res.Confidence, 0.0)
			assert.LessOrEqual(t, res.Confidence, 1.0)
		})
	}
}
