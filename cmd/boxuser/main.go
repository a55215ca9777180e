// Command boxuser looks up Box users and prints either their info or the
// API error the lookup produced.
//
//	boxuser [-v] <user-id>...
//
// Config comes from the environment (a .env file is honored):
// BOX_API_TOKEN, BOX_API_BASE_URL, BOX_CONCURRENCY.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/bodrovis/boxapi/apierr"
	"github.com/bodrovis/boxapi/client"
	"github.com/bodrovis/boxapi/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_ = utils.LoadDotEnv()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("boxuser", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log failed responses and print raw error bodies")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: boxuser [-v] <user-id>...")
		return 2
	}

	opts := []client.Option{}
	if base := utils.GetEnv("BOX_API_BASE_URL", ""); base != "" {
		opts = append(opts, client.WithBaseURL(base))
	}
	if raw := utils.GetEnv("BOX_CONCURRENCY", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(stderr, "BOX_CONCURRENCY: %v\n", err)
			return 2
		}
		opts = append(opts, client.WithConcurrency(n))
	}
	if *verbose {
		opts = append(opts, client.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	c, err := client.NewClient(utils.GetEnv("BOX_API_TOKEN", ""), opts...)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	users, err := c.GetUsers(ctx, fs.Args())
	if err != nil {
		if apiErr, ok := apierr.As(err); ok {
			fmt.Fprintln(stderr, apiErr.Message)
			if *verbose && apiErr.Raw != "" {
				fmt.Fprintln(stderr, apiErr.Raw)
			}
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	for _, u := range users {
		fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", u.ID, u.Login, u.Name, u.Status)
	}
	return 0
}
