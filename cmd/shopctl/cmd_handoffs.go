package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/senghong-shop/internal/models"
	"github.com/senghong-shop/internal/repository"

	"github.com/spf13/cobra"
)

var (
	handoffsLimit   int
	handoffsSession string
	handoffsMode    string
	handoffsSince   string
	handoffsUntil   string
)

// handoffsCmd 查看最近的结账交接记录
var handoffsCmd = &cobra.Command{
	Use:   "handoffs",
	Short: "List recorded checkout handoffs",
	RunE:  runHandoffs,
}

func init() {
	handoffsCmd.Flags().IntVar(&handoffsLimit, "limit", 20, "number of records to show")
	handoffsCmd.Flags().StringVar(&handoffsSession, "session", "", "filter by session id")
	handoffsCmd.Flags().StringVar(&handoffsMode, "mode", "", "filter by delivery mode")
	handoffsCmd.Flags().StringVar(&handoffsSince, "since", "", "only handoffs created at or after this time (RFC3339 or YYYY-MM-DD)")
	handoffsCmd.Flags().StringVar(&handoffsUntil, "until", "", "only handoffs created at or before this time (RFC3339 or YYYY-MM-DD)")
}

func runHandoffs(cmd *cobra.Command, _ []string) error {
	if !cfg.Database.Enabled {
		return errors.New("database is disabled, no handoffs are recorded")
	}
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
	}); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	repo := repository.NewCheckoutLogRepository(models.DB)
	return listHandoffs(cmd, repo)
}

func handoffsFilter() (repository.CheckoutLogListFilter, error) {
	filter := repository.CheckoutLogListFilter{
		Page:         1,
		PageSize:     handoffsLimit,
		SessionID:    handoffsSession,
		DeliveryMode: handoffsMode,
	}
	from, err := parseTimeFlag("since", handoffsSince)
	if err != nil {
		return filter, err
	}
	to, err := parseTimeFlag("until", handoffsUntil)
	if err != nil {
		return filter, err
	}
	filter.CreatedFrom = from
	filter.CreatedTo = to
	return filter, nil
}

// parseTimeFlag 解析时间参数，空值返回 nil；仅日期时按 UTC 零点
func parseTimeFlag(name, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid --%s value %q", name, raw)
}

func listHandoffs(cmd *cobra.Command, repo repository.CheckoutLogRepository) error {
	filter, err := handoffsFilter()
	if err != nil {
		return err
	}
	items, total, err := repo.List(filter)
	if err != nil {
		return fmt.Errorf("list handoffs: %w", err)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tSESSION\tMODE\tITEMS\tTOTAL")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s %s\n",
			item.ID, item.CreatedAt.Format("2006-01-02 15:04:05"), item.SessionID,
			item.DeliveryMode, item.TotalItems, item.TotalPrice.String(), item.Currency,
		)
	}
	fmt.Fprintf(w, "\nshowing %d of %d\n", len(items), total)
	return w.Flush()
}
