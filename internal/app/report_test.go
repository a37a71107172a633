package app_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
)

func TestRenderReport(t *testing.T) {
	inputs := []domain.Observation{
		{Kind: domain.SourceFile, ID: "cachet.yaml", ValueHash: "00000000000061a8"},
		{Kind: domain.SourceFile, ID: "manifest.txt", ValueHash: "00000000000061a9"},
	}

	tests := []struct {
		name       string
		report     *domain.RunReport
		goldenName string
	}{
		{
			name: "valid",
			report: &domain.RunReport{
				Status: domain.CacheValid,
				Values: map[string]string{
					"toolchain":    "stable",
					"build-number": "43",
				},
				Inputs: inputs,
			},
			goldenName: "report_valid",
		},
		{
			name: "stale with reasons",
			report: &domain.RunReport{
				Status: domain.CacheStale,
				Reasons: []string{
					"fingerprint changed: provider toolchain",
					"input changed: file manifest.txt",
				},
				Values: map[string]string{
					"toolchain":    "stable",
					"build-number": "42",
				},
				Inputs: inputs,
			},
			goldenName: "report_stale",
		},
		{
			name: "empty manifest",
			report: &domain.RunReport{
				Status:  domain.CacheStale,
				Reasons: []string{"no snapshot from a previous run"},
			},
			goldenName: "report_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(app.RenderReport(tt.report)))
		})
	}
}
