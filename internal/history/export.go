package history

import (
	"errors"
	"fmt"
	"io"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/parquet"
)

// Export writes every recorded run and total of the store to Parquet files
// named after outputFile, reporting progress on w.
func Export(w io.Writer, store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no history data found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total runs: %d\n", status.TotalRuns)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	tiers, err := store.GetAllTierTotals()
	if err != nil {
		return fmt.Errorf("failed to retrieve tier totals: %w", err)
	}
	categories, err := store.GetAllCategoryTotals()
	if err != nil {
		return fmt.Errorf("failed to retrieve category totals: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteFile(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d runs to: %s\n", len(runs), runsFile)

	tiersFile := outputFile + ".tier_totals.parquet"
	if err := parquet.WriteFile(parquet.ConvertTierTotalRecords(tiers), tiersFile); err != nil {
		return fmt.Errorf("failed to write tier totals: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d tier totals to: %s\n", len(tiers), tiersFile)

	categoriesFile := outputFile + ".category_totals.parquet"
	if err := parquet.WriteFile(parquet.ConvertCategoryTotalRecords(categories), categoriesFile); err != nil {
		return fmt.Errorf("failed to write category totals: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d category totals to: %s\n", len(categories), categoriesFile)

	_, _ = fmt.Fprintln(w, "\nExport complete! The Parquet files can be read with DuckDB, Pandas (via pyarrow) or Apache Arrow.")
	return nil
}
