package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bookkeeper/internal/infrastructure/postgres"
	"bookkeeper/internal/service"
)

var (
	seedBusinessIDs string
	seedAll         bool
	seedWorkers     int
)

var seedCategoriesCmd = &cobra.Command{
	Use:   "seed-categories",
	Short: "Add missing default categories to businesses",
	Long: `Inserts every default category a business does not have yet, matching
names case-insensitively. Existing categories are left untouched.

Examples:
  admin seed-categories --business-id=1
  admin seed-categories --business-id=1,2,3
  admin seed-categories --all --workers=8`,
	Args: cobra.NoArgs,
	RunE: runSeedCategories,
}

func init() {
	seedCategoriesCmd.Flags().StringVar(&seedBusinessIDs, "business-id", "", "business id(s) to seed (comma-separated)")
	seedCategoriesCmd.Flags().BoolVar(&seedAll, "all", false, "seed every business")
	seedCategoriesCmd.Flags().IntVar(&seedWorkers, "workers", service.DefaultSeedWorkers, "number of concurrent workers")
	seedCategoriesCmd.MarkFlagsMutuallyExclusive("business-id", "all")
	seedCategoriesCmd.MarkFlagsOneRequired("business-id", "all")
}

func runSeedCategories(cmd *cobra.Command, args []string) error {
	var ids []int64
	if !seedAll {
		var err error
		if ids, err = parseIDs(seedBusinessIDs); err != nil {
			return err
		}
	}

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	svc := service.NewBusinessService(postgres.NewUnitOfWork(e.db))

	if seedAll {
		businesses, err := svc.List(e.ctx)
		if err != nil {
			return err
		}
		for _, b := range businesses {
			ids = append(ids, b.ID)
		}
		e.log.Info().Int("count", len(ids)).Msg("Found businesses")
	}

	if len(ids) == 0 {
		e.log.Info().Msg("No businesses to process")
		return nil
	}

	e.log.Info().Int("businesses", len(ids)).Int("workers", seedWorkers).Msg("Seeding default categories")
	start := time.Now()

	results := svc.SeedDefaultCategoriesForAll(e.ctx, ids, seedWorkers)
	failed := printSeedResults(cmd.OutOrStdout(), ids, results)

	e.log.Info().Dur("elapsed", time.Since(start)).Int("failed", failed).Msg("Seeding completed")
	if failed > 0 {
		return fmt.Errorf("%d of %d business(es) failed", failed, len(ids))
	}
	return nil
}

// parseIDs reads a comma-separated list of positive ids, skipping blanks.
func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid business id %q", p)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("no business ids given")
	}
	return ids, nil
}

// printSeedResults writes one line per business in id order and returns the
// number of failures.
func printSeedResults(w io.Writer, ids []int64, results map[int64]service.SeedResult) int {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	failed := 0
	for _, id := range slices.Compact(sorted) {
		r := results[id]
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "business %d: error: %v\n", id, r.Err)
			continue
		}
		fmt.Fprintf(w, "business %d: %d categor%s created\n", id, r.Created, plural(r.Created, "y", "ies"))
	}
	return failed
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
