package app

import (
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/cachet/internal/core/domain"
)

// RenderReport renders a run report as stable, line-oriented text. Providers
// and inputs are emitted in sorted order so output is byte-identical for
// identical reports.
func RenderReport(r *domain.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "configuration cache: %s\n", strings.ToUpper(string(r.Status)))
	for _, reason := range r.Reasons {
		fmt.Fprintf(&b, "  - %s\n", reason)
	}

	if len(r.Values) > 0 {
		b.WriteString("providers:\n")
		names := make([]string, 0, len(r.Values))
		for name := range r.Values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s = %s\n", name, r.Values[name])
		}
	}

	if len(r.Inputs) > 0 {
		b.WriteString("tracked inputs:\n")
		for _, obs := range r.Inputs {
			fmt.Fprintf(&b, "  %s %s %s\n", obs.Kind, obs.ID, obs.ValueHash)
		}
	}

	return b.String()
}
