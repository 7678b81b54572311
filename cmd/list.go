package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"warehouse.GO/config"
	"warehouse.GO/core/i18n"
	receptionService "warehouse.GO/service/reception"
)

var (
	listSearch string
	listStatus string
	listLang   string
)

var listCmd = &cobra.Command{
	Use:   "receptions:list",
	Short: "Print the reception records",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}
		lang := listLang
		if lang == "" {
			lang = config.AppConfig.Language
		}
		translate := i18n.Translator(lang)

		list := receptionService.Filter(repo.List(), receptionService.ListQuery{
			Search: listSearch,
			Status: listStatus,
		})

		now := time.Now()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			translate("table.columns.product"),
			translate("table.columns.cartons"),
			translate("table.columns.totalUnits"),
			translate("table.columns.barcode"),
			translate("table.columns.production"),
			translate("table.columns.expiration"),
			translate("table.columns.status"),
		)
		for _, rec := range list {
			display := receptionService.DisplayStatus(rec, now)
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
				rec.ProductName, rec.Cartons, rec.TotalUnits, rec.Barcode,
				rec.ProductionDate, rec.ExpirationDate, translate("status."+display))
		}
		w.Flush()
		fmt.Printf("\n%s: %d  %s: %d\n",
			translate("table.totalReceptions"), len(list),
			translate("table.totalUnits"), receptionService.SumTotalUnits(list))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Substring filter across record fields")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (ok, passedThird, expired)")
	listCmd.Flags().StringVar(&listLang, "lang", "", "Label language (fr, en, ar)")
	rootCmd.AddCommand(listCmd)
}
