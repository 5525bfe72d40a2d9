package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/reps/internal/config"
	"github.com/five82/reps/internal/rapidapi"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, formatError(err))
		}
		return 1
	}
	return 0
}

// formatError prefixes err with the program name and adds a hint when the
// API rejected the key.
func formatError(err error) string {
	msg := "reps: " + err.Error()
	if f, ok := rapidapi.AsFailure(err); ok && f.Reason == rapidapi.ReasonHTTPStatus {
		switch f.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			msg += "\nhint: check api_key in the config file or " + config.EnvAPIKey
		case http.StatusTooManyRequests:
			msg += "\nhint: the RapidAPI quota is exhausted; try again later"
		}
	}
	return msg
}
