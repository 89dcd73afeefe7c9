package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/persistorai/wikigraph/client"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server liveness",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			h, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"STATUS", "VERSION", "DATABASE", "PROVIDER", "CACHED"}, [][]string{{
					h.Status, h.Version, h.Database, h.Provider, fmt.Sprint(h.CachedArticles),
				}})
				return
			}
			output(h, h.Status)
		},
	}
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and connectivity",
		Long:  "Run diagnostic checks against config, server liveness, and readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
	Hint   string
}

func runDoctor() error {
	fmt.Println("\nwikigraph doctor")
	fmt.Println("================")

	results := doctorChecks(flagURL)

	fmt.Println()
	allPassed := true
	for _, r := range results {
		mark := "ok  "
		if !r.Passed {
			mark = "FAIL"
			allPassed = false
		}
		if r.Detail != "" {
			fmt.Printf("[%s] %s: %s\n", mark, r.Name, r.Detail)
		} else {
			fmt.Printf("[%s] %s\n", mark, r.Name)
		}
		if !r.Passed && r.Hint != "" {
			fmt.Printf("       Hint: %s\n", r.Hint)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("Some checks failed.")
		return fmt.Errorf("doctor found issues")
	}
	fmt.Println("All checks passed.")
	return nil
}

// doctorChecks runs each diagnostic against url. A missing config file is
// informational since flags and env can stand in for it.
func doctorChecks(url string) []checkResult {
	var results []checkResult

	cfgPath, _ := configPath()
	if _, err := loadConfigFile(); err != nil {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("not found (%s), using flags/env", cfgPath),
		})
	} else {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("found (%s)", cfgPath),
		})
	}

	results = append(results, checkResult{Name: "Server URL", Passed: true, Detail: url})

	c := client.New(url, client.WithTimeout(5*time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	health, err := c.Health(ctx)
	if err != nil {
		return append(results, checkResult{
			Name: "Server reachable", Passed: false,
			Detail: url,
			Hint:   fmt.Sprintf("Is wikigraph-server running? Error: %v", err),
		})
	}
	results = append(results, checkResult{
		Name: "Server reachable", Passed: true,
		Detail: fmt.Sprintf("v%s, wikipedia %s", health.Version, health.Provider),
	})

	ready, err := c.Ready(ctx)
	if err != nil {
		return append(results, checkResult{
			Name: "Server ready", Passed: false,
			Hint: fmt.Sprintf("Check the server logs and database. Error: %v", err),
		})
	}
	keys := make([]string, 0, len(ready.Checks))
	for k := range ready.Checks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		results = append(results, checkResult{Name: "Ready: " + k, Passed: true, Detail: ready.Checks[k]})
	}
	return results
}
