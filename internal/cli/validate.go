package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/ranksync/internal/core/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate a config file and print what a run would scan",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	_ = godotenv.Load()

	cfg, err := config.Load(args[0])
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Config is invalid", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Config OK\n")
	fmt.Printf("  group:         %d\n", cfg.GroupID)
	fmt.Printf("  scanned roles: %v\n", cfg.ScannedRoles)
	fmt.Printf("  wildcard role: %s\n", cfg.WildcardRole)

	roles := make([]string, 0, len(cfg.RoleYearPairs))
	for role := range cfg.RoleYearPairs {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		years := append([]int(nil), cfg.RoleYearPairs[role]...)
		sort.Ints(years)
		fmt.Printf("  %s: %v\n", role, years)
	}
}
