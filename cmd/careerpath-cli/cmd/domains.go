package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"careerpath/internal/adapters/editor"
	"careerpath/internal/domain"
)

var (
	domainsFile    string
	domainsSummary string
	domainsEdit    bool
)

const summaryTemplate = `
# Describe what you love, what you are good at, what the world needs
# and what you can be paid for. Lines starting with # are ignored.
`

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Manage the domains generated for this session",
	Long: `Generate career domains from an ikigai summary and keep them for the
rest of the session.

Examples:
  careerpath-cli domains generate "I love tinkering with hardware and teaching"
  careerpath-cli domains generate --edit
  careerpath-cli domains show
  careerpath-cli domains save --file domains.json --summary "..."
  careerpath-cli domains clear`,
}

var domainsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cached domains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		session, ok := GetServices().Domains.Load(ctx)
		if !ok {
			warnColor.Println("No domains cached. Run `careerpath-cli domains generate <summary>`.")
			return nil
		}
		printDomains(session.Domains)
		if session.IkigaiSummary != "" {
			fmt.Println()
			dimColor.Printf("Generated from: %s\n", session.IkigaiSummary)
		}
		return nil
	},
}

var domainsGenerateCmd = &cobra.Command{
	Use:   "generate [ikigai-summary]",
	Short: "Generate domains from an ikigai summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary := strings.Join(args, " ")
		if domainsEdit || summary == "" {
			edited, err := editor.New().Edit(summary + summaryTemplate)
			if err != nil {
				return err
			}
			summary = edited
		}

		ctx, cancel := opContext(cmd)
		defer cancel()

		session, cached, err := GetServices().Domains.Generate(ctx, summary)
		if err != nil {
			return err
		}
		if cached {
			dimColor.Println("(from session cache)")
		}
		printDomains(session.Domains)
		return nil
	},
}

var domainsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store domains from a JSON file (or stdin) in the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		var r io.Reader = os.Stdin
		if domainsFile != "" && domainsFile != "-" {
			f, err := os.Open(domainsFile)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", domainsFile, err)
			}
			defer f.Close()
			r = f
		}

		var domains []domain.Domain
		if err := json.NewDecoder(r).Decode(&domains); err != nil {
			return fmt.Errorf("failed to parse domains: %w", err)
		}

		if err := GetServices().Domains.Save(ctx, domains, domainsSummary); err != nil {
			return err
		}
		successColor.Printf("Saved %d domains\n", len(domains))
		return nil
	},
}

var domainsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the cached domains, summary and selected project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		if err := GetServices().Domains.Clear(ctx); err != nil {
			return err
		}
		successColor.Println("Cleared cached domains")
		return nil
	},
}

func printDomains(domains []domain.Domain) {
	if len(domains) == 0 {
		fmt.Println("No domains.")
		return
	}
	for _, d := range domains {
		titleColor.Printf("%s", d.Name)
		dimColor.Printf("  %s\n", d.ID)
		if d.Description != "" {
			fmt.Printf("  %s\n", d.Description)
		}
		if len(d.JobTitles) > 0 {
			fmt.Printf("  Roles: %s\n", strings.Join(d.JobTitles, ", "))
		}
		if len(d.RequiredSkills) > 0 {
			fmt.Printf("  Skills: %s\n", strings.Join(d.RequiredSkills, ", "))
		}
	}
}

func init() {
	rootCmd.AddCommand(domainsCmd)
	domainsCmd.AddCommand(domainsShowCmd)
	domainsCmd.AddCommand(domainsGenerateCmd)
	domainsCmd.AddCommand(domainsSaveCmd)
	domainsCmd.AddCommand(domainsClearCmd)

	domainsGenerateCmd.Flags().BoolVarP(&domainsEdit, "edit", "e", false, "write the summary in $EDITOR")
	domainsSaveCmd.Flags().StringVarP(&domainsFile, "file", "f", "-", "JSON array of domains (- for stdin)")
	domainsSaveCmd.Flags().StringVar(&domainsSummary, "summary", "", "ikigai summary the domains came from")
}
