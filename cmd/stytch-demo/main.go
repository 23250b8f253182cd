// Command stytch-demo is an interactive harness for the SDK: it starts an
// OAuth flow, prints the URL to open, and completes whatever callback URL
// is pasted back in.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"runtime/debug"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	stytch "github.com/stytchauth/stytch-client-go"
	"github.com/stytchauth/stytch-client-go/deeplink"
	"github.com/stytchauth/stytch-client-go/flows"
	"github.com/stytchauth/stytch-client-go/internal/config"
	"github.com/stytchauth/stytch-client-go/sessions"
	"github.com/stytchauth/stytch-client-go/storage"
	"github.com/stytchauth/stytch-client-go/storage/redisrepo"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running demo: %s\n", err)
	}
	log.Printf("Demo stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	repo, err := buildStorage(c)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := stytch.NewClient(ctx, stytch.Config{
		PublicToken:            c.GetPublicToken(),
		ProjectID:              c.GetProjectID(),
		APIBaseURL:             c.GetAPIBaseURL(),
		PublicBaseURL:          c.GetPublicBaseURL(),
		CallbackScheme:         c.GetCallbackScheme(),
		CallbackHost:           c.GetCallbackHost(),
		SessionDurationMinutes: c.GetSessionDurationMinutes(),
	}, stytch.WithStorage(repo), stytch.WithLogger(logger))
	if err != nil {
		return err
	}

	events, cancel := client.Sessions().Subscribe()
	defer cancel()
	go logSessionEvents(logger, events)

	start, err := client.Flows().StartOAuth(ctx, "google")
	if err != nil {
		return err
	}
	fmt.Printf("Open in a browser:\n\n  %s\n\n", start.URL)
	fmt.Printf("Paste the %s:// callback URL here (or \"quit\"):\n", c.GetCallbackScheme())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			break
		}

		u, err := url.Parse(line)
		if err != nil {
			fmt.Printf("not a URL: %s\n", err)
			continue
		}

		result, err := client.HandleDeepLink(ctx, u)
		if err != nil {
			fmt.Printf("flow failed: %s\n", err)
			continue
		}
		printResult(result)
		if result.Disposition == deeplink.Handled && result.Outcome.Kind == flows.OutcomeFullyAuthenticated {
			break
		}
	}
	return scanner.Err()
}

func buildStorage(c config.Config) (storage.Repo, error) {
	addr := c.GetRedisAddr()
	if addr == "" {
		return storage.NewInMemoryRepo(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return redisrepo.New(client, "stytch-demo")
}

func logSessionEvents(logger zerolog.Logger, events <-chan sessions.Event) {
	for event := range events {
		logger.Info().Stringer("event", event.Kind).Msg("session state changed")
	}
}

func printResult(result deeplink.Result) {
	switch result.Disposition {
	case deeplink.NotHandled:
		fmt.Println("URL not recognized")
	case deeplink.ManualHandlingRequired:
		fmt.Printf("manual step required for %s token %s\n", result.Callback.Type, result.Callback.Token)
	case deeplink.Handled:
		switch result.Outcome.Kind {
		case flows.OutcomeFullyAuthenticated:
			fmt.Println("logged in")
		case flows.OutcomeMFARequired:
			fmt.Println("additional factor required")
		case flows.OutcomeDiscoveryIntermediate:
			fmt.Println("pick an organization to continue")
		case flows.OutcomePrimaryFactorRequired:
			fmt.Println("a stronger primary factor is required")
		}
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
