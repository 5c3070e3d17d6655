package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/leave-calendar/internal/config"
	"github.com/username/leave-calendar/internal/engine"
	"github.com/username/leave-calendar/internal/export"
	"github.com/username/leave-calendar/internal/holiday"
	"github.com/username/leave-calendar/internal/roster"
	"github.com/username/leave-calendar/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "leave-calendar",
		Short: "Team leave calendar",
		Long:  "Compute and render team leave calendars with overlap detection, public holidays and filtering",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(rosterCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showCmd() *cobra.Command {
	var (
		view       string
		date       string
		offset     int
		department string
		team       string
		employee   string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the leave calendar for a month or week",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			eng, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			if view == "" {
				view = cfg.Calendar.GetDefaultView()
			}
			mode, err := engine.ParseViewMode(view)
			if err != nil {
				return err
			}
			eng.SetView(mode)

			if date != "" {
				anchor, err := dateutil.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				eng.SetReference(anchor)
			} else {
				eng.GoToToday()
			}

			eng.SetFilter(roster.Filter{
				Department: department,
				Team:       team,
				EmployeeID: employee,
			})

			navigate(eng, mode, offset)

			grid := eng.Grid()
			if mode == engine.ViewWeek {
				renderWeek(grid)
			} else {
				renderMonth(monthTitle(eng.Reference()), grid, cfg.Calendar.GetWeekStart())
			}
			renderDayDetails(grid)
			renderSummary(eng.Summarize())

			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "View mode: month or week (default from config)")
	cmd.Flags().StringVar(&date, "date", "", "Anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Shift the anchor by N months/weeks (negative = back)")
	cmd.Flags().StringVar(&department, "department", "", "Filter by department")
	cmd.Flags().StringVar(&team, "team", "", "Filter by team")
	cmd.Flags().StringVar(&employee, "employee", "", "Filter by employee ID")

	return cmd
}

func exportCmd() *cobra.Command {
	var (
		format     string
		output     string
		date       string
		department string
		team       string
		employee   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered leave calendar as ICS, CSV or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store, err := loadStore(cfg)
			if err != nil {
				return err
			}
			holidaySet, err := loadHolidays(cfg)
			if err != nil {
				return err
			}

			filter := roster.Filter{
				Department: department,
				Team:       team,
				EmployeeID: employee,
			}
			records := filter.Apply(store.Records())

			logger.Info("Exporting leave calendar",
				zap.String("format", format),
				zap.Int("records", len(records)))

			switch format {
			case "ics":
				return writeToOutput(output, func(w *os.File) error {
					return export.WriteICS(w, "Team Leave", records, holidaySet.All())
				})

			case "csv":
				return writeToOutput(output, func(w *os.File) error {
					return export.WriteCSV(w, records)
				})

			case "pdf":
				if output == "" {
					return fmt.Errorf("--output is required for PDF export")
				}
				eng := engine.New(store, holidaySet, cfg.Calendar.GetWeekStart(), logger)
				eng.SetFilter(filter)
				if date != "" {
					anchor, err := dateutil.ParseDate(date)
					if err != nil {
						return fmt.Errorf("invalid --date: %w", err)
					}
					eng.SetReference(anchor)
				}
				title := monthTitle(eng.Reference())
				if err := export.MonthPDF(output, title, eng.Grid(), cfg.Calendar.GetWeekStart()); err != nil {
					return err
				}
				fmt.Printf("✅ Wrote %s\n", output)
				return nil

			default:
				return fmt.Errorf("format must be 'ics', 'csv' or 'pdf', got '%s'", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "ics", "Export format: ics, csv or pdf")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default stdout for ics/csv)")
	cmd.Flags().StringVar(&date, "date", "", "Month to render for PDF export (YYYY-MM-DD)")
	cmd.Flags().StringVar(&department, "department", "", "Filter by department")
	cmd.Flags().StringVar(&team, "team", "", "Filter by team")
	cmd.Flags().StringVar(&employee, "employee", "", "Filter by employee ID")

	return cmd
}

func rosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List the loaded leave records and filterable groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store, err := loadStore(cfg)
			if err != nil {
				return err
			}
			records := store.Records()

			fmt.Println("  ID | Employee        | Dept        | Team        | Type      | From       | To")
			fmt.Println("-----+-----------------+-------------+-------------+-----------+------------+-----------")
			for _, r := range records {
				fmt.Printf(" %3d | %-15s | %-11s | %-11s | %-9s | %s | %s\n",
					r.ID, r.Employee, r.Department, r.Team, r.LeaveType,
					r.StartDate, r.EndDate)
			}

			fmt.Printf("\nDepartments: %s\n", strings.Join(roster.Departments(records), ", "))
			fmt.Printf("Teams:       %s\n", strings.Join(roster.Teams(records), ", "))
			fmt.Print("Employees:   ")
			for i, e := range roster.Employees(records) {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Printf("%s (%s)", e.Name, e.ID)
			}
			fmt.Println()

			return nil
		},
	}
}

// navigate applies a relative offset through the engine's navigation
// operations so month moves land on day 1 and week moves stay exact.
func navigate(eng *engine.Engine, mode engine.ViewMode, offset int) {
	for i := 0; i < offset; i++ {
		if mode == engine.ViewWeek {
			eng.NextWeek()
		} else {
			eng.NextMonth()
		}
	}
	for i := 0; i > offset; i-- {
		if mode == engine.ViewWeek {
			eng.PrevWeek()
		} else {
			eng.PrevMonth()
		}
	}
}

func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	store, err := loadStore(cfg)
	if err != nil {
		return nil, err
	}
	holidaySet, err := loadHolidays(cfg)
	if err != nil {
		return nil, err
	}
	return engine.New(store, holidaySet, cfg.Calendar.GetWeekStart(), logger), nil
}

func loadStore(cfg *config.Config) (roster.Store, error) {
	if cfg.Roster.File == "" {
		logger.Info("Using built-in sample roster")
		return roster.SampleStore(), nil
	}

	fs := roster.NewFileStore(cfg.Roster.File, logger)
	if err := fs.Load(); err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return fs, nil
}

func loadHolidays(cfg *config.Config) (*holiday.Set, error) {
	if cfg.Holidays.File == "" {
		return holiday.NewSet(holiday.SampleHolidays()), nil
	}

	holidays, err := holiday.LoadFile(cfg.Holidays.File, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	return holiday.NewSet(holidays), nil
}

func writeToOutput(output string, write func(*os.File) error) error {
	if output == "" {
		return write(os.Stdout)
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	fmt.Printf("✅ Wrote %s\n", output)
	return nil
}

func monthTitle(d dateutil.Date) string {
	return fmt.Sprintf("%s %d", d.Month, d.Year)
}

func renderMonth(title string, grid []engine.Cell, firstDay time.Weekday) {
	fmt.Printf("\n📅 %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════")
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(firstDay) + i) % 7)
		fmt.Printf(" %6s", day.String()[:3])
	}
	fmt.Println()

	for i, cell := range grid {
		fmt.Printf(" %6s", cellLabel(cell))
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}
	if len(grid)%7 != 0 {
		fmt.Println()
	}
	fmt.Println("\nLegend: [n] = today, * = public holiday, (n) = people on leave")
}

// cellLabel compresses a cell into a short marker: day number, [n] for
// today, a trailing * for holidays and (n) for the leave count.
func cellLabel(cell engine.Cell) string {
	if cell.Blank {
		return ""
	}

	label := strconv.Itoa(cell.Date.Day)
	if cell.IsToday {
		label = "[" + label + "]"
	}
	if cell.Holiday != nil {
		label += "*"
	}
	if n := len(cell.Leaves); n > 0 {
		label += fmt.Sprintf("(%d)", n)
	}
	return label
}

func renderWeek(grid []engine.Cell) {
	if len(grid) == 0 {
		return
	}
	fmt.Printf("\n📅 Week of %s\n", grid[0].Date)
	fmt.Println("═══════════════════════════════════════════════════════")
	for _, cell := range grid {
		marker := " "
		if cell.IsToday {
			marker = ">"
		}
		fmt.Printf(" %s %s %s", marker, cell.Date.Weekday().String()[:3], cell.Date)
		if cell.Holiday != nil {
			fmt.Printf("  🎉 %s", cell.Holiday.Name)
		}
		if len(cell.Leaves) == 0 {
			fmt.Print("  no leaves")
		}
		fmt.Println()
		for _, l := range cell.Leaves {
			fmt.Printf("      - %s  %s (%s / %s)\n",
				l.Employee, l.LeaveType.Label(), l.Department, l.Team)
		}
	}
}

func renderDayDetails(grid []engine.Cell) {
	printed := false
	for _, cell := range grid {
		if cell.Blank || len(cell.Leaves) == 0 {
			continue
		}
		if !printed {
			fmt.Println("\n📋 Scheduled leaves:")
			printed = true
		}
		fmt.Printf("  %s\n", cell.Date)
		for _, l := range cell.Leaves {
			fmt.Printf("    - %s  %s (%s / %s)\n",
				l.Employee, l.LeaveType.Label(), l.Department, l.Team)
		}
	}
}

func renderSummary(s engine.Summary) {
	fmt.Println("\n📊 Summary")
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Printf("  Total leaves:        %d\n", s.TotalLeaves)
	fmt.Printf("  On leave today:      %d\n", s.OnLeaveToday)
	fmt.Printf("  Overlapping days:    %d\n", s.OverlapDays)
}

func initLogger() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
