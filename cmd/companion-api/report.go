package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waylo/companion/backend/internal/config"
	"github.com/waylo/companion/backend/internal/export"
	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/metrics"
	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/repository"
	"github.com/waylo/companion/backend/internal/service"
	"github.com/waylo/companion/backend/pkg/supabase"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a device's dashboard",
	Long: `Fetch one device's logs and print its dashboard as JSON, or write it
as an Excel workbook with --xlsx. Sections that fail to load are reported in
"notices" the same way the HTTP dashboard does.`,
	RunE: runReport,
}

var (
	reportDevice    string
	reportTimezone  string
	reportWeekStart string
	reportXLSX      string
)

func init() {
	reportCmd.Flags().StringVarP(&reportDevice, "device", "d", "", "Toy MAC address or UUID")
	reportCmd.Flags().StringVar(&reportTimezone, "tz", "", "IANA timezone (overrides config)")
	reportCmd.Flags().StringVar(&reportWeekStart, "week-start", "", "sunday or monday (overrides config)")
	reportCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "Write an .xlsx workbook to this path instead of JSON")
	_ = reportCmd.MarkFlagRequired("device")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if reportTimezone != "" {
		cfg.Reports.Timezone = reportTimezone
	}
	if reportWeekStart != "" {
		cfg.Reports.WeekStart = reportWeekStart
	}
	cal, err := cfg.Calendar()
	if err != nil {
		return err
	}

	deviceID, err := service.NormalizeDeviceID(reportDevice)
	if err != nil {
		return err
	}

	// stdout carries the report.
	logCfg := cfg.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logger.SetDefault(logger.NewSlogLogger(logCfg))

	client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	m := metrics.New()
	reports := service.NewReportService(
		repository.NewToyLogRepository(client),
		repository.NewSentimentRepository(client),
		repository.NewInterestRepository(client),
		m,
	)

	d := service.NewDashboardService(reports, m).Dashboard(cmd.Context(), deviceID, cal)

	if reportXLSX != "" {
		if err := export.SaveWorkbook(reportXLSX, d); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d days, %s)\n", reportXLSX, len(d.Daily), describeWeeks(d))
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func describeWeeks(d *service.Dashboard) string {
	if d.Weekly == nil {
		return "weekly unavailable"
	}
	total := 0
	for _, w := range d.Weekly {
		total += report.WeekHours(w)
	}
	return fmt.Sprintf("%d weeks, %d hours", len(d.Weekly), total)
}
