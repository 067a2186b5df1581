package main

import (
	"fmt"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/compliance"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/panel"
)

func printPanel(p *panel.PanelConfiguration) {
	fmt.Printf("%s (%s, %s)\n", p.Name, p.Type, p.Phase)
	fmt.Printf("Main switch: %d A   Modules: %d/%d used (%.1f%% spare)\n",
		p.MainSwitchA, p.ModulesUsed, p.TotalModules, p.SparePercent)
	fmt.Println()

	fmt.Printf("%-4s %-34s %-5s %5s %5s %3s %9s %s\n",
		"Pos", "Circuit", "Type", "Amp", "Curve", "Ph", "Cable", "RCD")
	for _, c := range p.Circuits {
		rcd := "-"
		if c.RCDType != "" {
			rcd = fmt.Sprintf("%s/%dmA", c.RCDType, c.RCDSensMA)
		}
		fmt.Printf("%-4d %-34s %-5s %4dA %5s %3d %6.3gmm² %s\n",
			c.Position, c.Description, c.Breaker, c.RatingA, c.Curve, c.Phase, c.CrossSection, rcd)
	}

	if len(p.RCDGroups) > 0 {
		fmt.Println()
		for _, g := range p.RCDGroups {
			fmt.Printf("%s: type %s %d mA, %d A, circuits %v\n",
				g.Description, g.Type, g.SensMA, g.RatingA, g.Circuits)
		}
	}

	fmt.Println()
	fmt.Println("Cost breakdown (DKK)")
	fmt.Println("--------------------")
	cb := p.CostBreakdown
	rows := []struct {
		label string
		value float64
	}{
		{"Enclosure", cb.Enclosure},
		{"Main switch", cb.MainSwitch},
		{"Breakers", cb.Breakers},
		{"RCD groups", cb.RCDGroups},
		{"Surge protection", cb.SurgeProtection},
		{"Misc", cb.Misc},
		{"TOTAL", cb.Total},
	}
	for _, row := range rows {
		fmt.Printf("  %-18s %10.0f\n", row.label, row.value)
	}
	fmt.Printf("Estimated labor: %.1f h\n", float64(p.LaborSeconds)/3600)
}

func printComplianceReport(r *compliance.Report) {
	if r.Compliant {
		fmt.Printf("Compliance: PASS (%s)\n", r.Summary)
	} else {
		fmt.Printf("Compliance: FAIL (%s)\n", r.Summary)
	}

	for _, issue := range r.Issues {
		fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Code, issue.Description)
		if issue.Area != "" {
			fmt.Printf("    area: %s\n", issue.Area)
		}
		fmt.Printf("    ref: %s\n", issue.StandardRef)
		if issue.Recommendation != "" {
			fmt.Printf("    * %s\n", issue.Recommendation)
		}
	}

	fmt.Println("Checked standards:")
	for _, s := range r.CheckedStandards {
		fmt.Printf("  - %s\n", s)
	}
}
