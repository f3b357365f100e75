package cli

import (
	"encoding/json"
	"fmt"

	"inventory/internal/delivery/api/validator"
	"inventory/internal/domain/validation"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type draftResult struct {
	File    string                   `json:"file"`
	Index   int                      `json:"index"`
	Name    string                   `json:"name"`
	SKU     string                   `json:"sku"`
	Valid   bool                     `json:"valid"`
	Errors  validation.FieldErrors   `json:"errors,omitempty"`
	Preview validation.ProfitPreview `json:"preview"`
}

type validationReport struct {
	Results []draftResult `json:"results"`
	Total   int           `json:"total"`
	Failed  int           `json:"failed"`
}

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <drafts.yaml> [more.yaml] ...",
		Short: "Validate product drafts",
		Long:  "Validate every product draft with the console's form rules and show its profit preview.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildValidationReport(args)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return errors.WithStack(err)
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), renderValidationReport(report))
			}

			if report.Failed > 0 {
				return errors.Errorf("%d of %d draft(s) failed validation", report.Failed, report.Total)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}

func buildValidationReport(paths []string) (*validationReport, error) {
	v := validator.New()
	report := &validationReport{}

	for _, path := range paths {
		entries, err := loadDrafts(path)
		if err != nil {
			return nil, err
		}

		for i, entry := range entries {
			errs := checkDraft(v, entry.ProductDraft)
			result := draftResult{
				File:    path,
				Index:   i + 1,
				Name:    entry.Name,
				SKU:     entry.SKU,
				Valid:   errs.Valid(),
				Preview: validation.CalculateProfit(entry.Price, entry.Cost).Preview(),
			}
			if !result.Valid {
				result.Errors = errs
				report.Failed++
			}
			report.Results = append(report.Results, result)
			report.Total++
		}
	}

	return report, nil
}
