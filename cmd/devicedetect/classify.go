package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

func newClassifyCommand(a *app) *cobra.Command {
	var (
		withHybrid bool
		showCache  bool
	)

	cmd := &cobra.Command{
		Use:   "classify [user-agent...]",
		Short: "Classify user-agent strings",
		Long: `Classify each argument as a user-agent string. Without arguments,
every non-empty line of standard input is classified.`,
		Example: `  devicedetect classify "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) ..."
  devicedetect classify --tablet --feature-detect --touch-points 5 --width 820 --height 1180 --hybrid < agents.txt
  cat access.log | awk -F'"' '{print $6}' | devicedetect classify -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			signals := args
			if len(signals) == 0 {
				var err error
				if signals, err = readLines(a); err != nil {
					return err
				}
			}

			enc := newEncoder(a.stdout, a.format)
			for _, ua := range signals {
				if err := enc.Encode(a.classify(ua, withHybrid)); err != nil {
					return err
				}
			}
			if showCache {
				if err := enc.Encode(a.classifier.CacheStats()); err != nil {
					return err
				}
			}
			return closeEncoder(enc)
		},
	}

	cmd.Flags().BoolVar(&withHybrid, "hybrid", false, "include the confidence-weighted hybrid verdict")
	cmd.Flags().BoolVar(&showCache, "cache-stats", false, "print cache statistics after the results")

	return cmd
}

func (a *app) classify(ua string, withHybrid bool) result {
	d := device.NewDetector(a.classifier, device.WithUAString(ua))
	res := result{Info: d.Info()}
	if withHybrid {
		h := d.Hybrid()
		res.Hybrid = &h
	}
	return res
}

func readLines(a *app) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(a.stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
