package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warehouse.GO/config"
	receptionRepo "warehouse.GO/model/repository/reception"
)

var rootCmd = &cobra.Command{
	Use:   "warehouse",
	Short: "Warehouse reception tracker CLI",
}

func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRepository builds the repository over the configured store backend.
func newRepository() (*receptionRepo.Repository, error) {
	config.LoadAppConfig()
	config.InitRedis()
	st, err := config.NewStore()
	if err != nil {
		return nil, err
	}
	return receptionRepo.NewRepository(st), nil
}
