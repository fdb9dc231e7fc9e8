package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/ranksync/internal/core/config"
	"github.com/vietddude/ranksync/internal/infra/roblox"
)

var rolesCmd = &cobra.Command{
	Use:   "roles <config-file>",
	Short: "List the group's roles with their platform ids",
	Args:  cobra.ExactArgs(1),
	Run:   runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, args []string) {
	_ = godotenv.Load()

	cfg, err := config.Load(args[0])
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	initLogging(cfg)

	client := roblox.NewClient(cfg.Roblosecurity)
	roles, err := client.GroupRoles(context.Background(), cfg.GroupID)
	if err != nil {
		slog.Error("Failed to list group roles", "group", cfg.GroupID, "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRANK\tNAME\tMEMBERS")
	for _, role := range roles {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", role.ID, role.Rank, role.Name, role.MemberCount)
	}
	w.Flush()
}
