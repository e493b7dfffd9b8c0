package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/okian/mastery/internal/domain/skill"
	"github.com/okian/mastery/pkg/logger"
	"github.com/okian/mastery/pkg/metrics"
)

const metricsReadHeaderTimeout = 5 * time.Second

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive tracking session",
	Long: `Start a menu-driven session. Changes are kept in memory and written
back to the storage file when the session ends.

When metrics_addr is configured, a Prometheus endpoint is served for the
lifetime of the session.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr)
	}

	in := bufio.NewScanner(os.Stdin)
	fmt.Printf("mastery session started (%d skill(s) loaded)\n", svc.Count(ctx))

	for {
		printMenu()
		choice, ok := prompt(in, "choice (1-8): ")
		if !ok || choice == "8" {
			break
		}
		if err := ctx.Err(); err != nil {
			break
		}
		if err := dispatch(ctx, in, choice); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}

	if err := saveAll(ctx); err != nil {
		return err
	}
	fmt.Printf("saved to %s\n", cfg.DataFile)
	return nil
}

func printMenu() {
	fmt.Println()
	fmt.Println("1. add technical skill")
	fmt.Println("2. add soft skill")
	fmt.Println("3. update progress")
	fmt.Println("4. log practice hours")
	fmt.Println("5. log soft skill application")
	fmt.Println("6. list skills")
	fmt.Println("7. statistics")
	fmt.Println("8. save and exit")
}

func dispatch(ctx context.Context, in *bufio.Scanner, choice string) error {
	switch choice {
	case "1":
		return sessionAddTechnical(ctx, in)
	case "2":
		return sessionAddSoft(ctx, in)
	case "3":
		return sessionUpdateProgress(ctx, in)
	case "4":
		return sessionLogPractice(ctx, in)
	case "5":
		return sessionLogApplication(ctx, in)
	case "6":
		return printRanking(ctx)
	case "7":
		return printStats(ctx)
	default:
		return fmt.Errorf("invalid choice %q, expected 1-8", choice)
	}
}

func sessionAddTechnical(ctx context.Context, in *bufio.Scanner) error {
	name, _ := prompt(in, "skill name: ")
	category, _ := prompt(in, "category: ")
	difficulty, err := promptInt(in, "difficulty (1-10): ")
	if err != nil {
		return err
	}
	sk, err := skill.NewTechnical(name, category, difficulty)
	if err != nil {
		return err
	}
	if err := svc.Add(ctx, sk); err != nil {
		return err
	}
	fmt.Printf("technical skill %q added\n", sk.Name())
	return nil
}

func sessionAddSoft(ctx context.Context, in *bufio.Scanner) error {
	name, _ := prompt(in, "skill name: ")
	category, _ := prompt(in, "category: ")
	sk, err := skill.NewSoft(name, category, 0)
	if err != nil {
		return err
	}
	if err := svc.Add(ctx, sk); err != nil {
		return err
	}
	fmt.Printf("soft skill %q added\n", sk.Name())
	return nil
}

func sessionUpdateProgress(ctx context.Context, in *bufio.Scanner) error {
	name, _ := prompt(in, "skill name: ")
	value, err := promptFloat(in, "progress (0-100): ")
	if err != nil {
		return err
	}
	return svc.UpdateProgress(ctx, name, value)
}

func sessionLogPractice(ctx context.Context, in *bufio.Scanner) error {
	name, _ := prompt(in, "skill name: ")
	hours, err := promptFloat(in, "hours practiced: ")
	if err != nil {
		return err
	}
	return svc.LogPractice(ctx, name, hours)
}

func sessionLogApplication(ctx context.Context, in *bufio.Scanner) error {
	name, _ := prompt(in, "soft skill name: ")
	return svc.LogApplication(ctx, name)
}

func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func promptInt(in *bufio.Scanner, label string) (int, error) {
	raw, ok := prompt(in, label)
	if !ok {
		return 0, errors.New("input closed")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("expected a whole number, got %q", raw)
	}
	return n, nil
}

func promptFloat(in *bufio.Scanner, label string) (float64, error) {
	raw, ok := prompt(in, label)
	if !ok {
		return 0, errors.New("input closed")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", raw)
	}
	return f, nil
}

// serveMetrics exposes the tracker's Prometheus registry for the lifetime
// of the session.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn(ctx, "metrics server stopped", logger.Error(err))
	}
}
