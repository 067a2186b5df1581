package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/project"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
)

func runCalc(projectPath string) error {
	in, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	res, err := project.Calculate(*in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func runValidate(projectPath string) error {
	in, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	if err := spec.ValidateProject(in); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("Project %q: input valid (%d rooms)\n", in.Name, len(in.Rooms))
	return nil
}

func runPanel(projectPath string) error {
	in, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	res, err := project.Calculate(*in)
	if err != nil {
		return err
	}

	printPanel(&res.Panel)
	fmt.Println()
	printComplianceReport(res.Compliance)

	if len(res.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	return nil
}
