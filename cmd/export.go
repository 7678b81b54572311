package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"warehouse.GO/config"
	receptionService "warehouse.GO/service/reception"
	"warehouse.GO/service/report"
)

var (
	exportOut    string
	exportSearch string
	exportStatus string
	exportLang   string
)

var exportCmd = &cobra.Command{
	Use:   "receptions:export",
	Short: "Generate the receptions PDF report",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}
		lang := exportLang
		if lang == "" {
			lang = config.AppConfig.Language
		}
		list := receptionService.Filter(repo.List(), receptionService.ListQuery{
			Search: exportSearch,
			Status: exportStatus,
		})

		now := time.Now()
		pdf, err := report.ReceptionsPDF(list, lang, now)
		if err != nil {
			return err
		}
		out := exportOut
		if out == "" {
			out = report.Filename(now)
		}
		if err := os.WriteFile(out, pdf, 0644); err != nil {
			return err
		}
		fmt.Printf("Report written: %s (%d receptions)\n", out, len(list))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default rapport-receptions-<date>.pdf)")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "Substring filter across record fields")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Filter by status (ok, passedThird, expired)")
	exportCmd.Flags().StringVar(&exportLang, "lang", "", "Report language (fr, en, ar)")
	rootCmd.AddCommand(exportCmd)
}
