package tgstat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whoamihappyhacking/tgstat/internal/store"
	"github.com/whoamihappyhacking/tgstat/internal/tgstat/database"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [export-file]",
	Short: "Analyze a chat export once and store the result",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := appConf.GetExportFile()
	if len(args) > 0 {
		path = args[0]
	}

	st, err := store.Open(dbPath())
	if err != nil {
		return err
	}
	defer st.Close()

	db, err := database.NewService(appConf, st)
	if err != nil {
		return err
	}

	analysis, err := db.AnalyzeFile(context.Background(), path)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
