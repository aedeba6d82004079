package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/MKhiriev/go-job-keeper/internal/adapter"
	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [flags] <command> [args]

commands:
  register <email> <password>   create an account and print the token
  login <email> <password>      log in and print the token
  version                       print the server build info
  dashboard [page] [per_page]   list folder summaries
  search <query>                search folders and applications
  catalog                       list tags, statuses and priorities
  add <title> <company>         create an application
  folder <title>                create a folder
`

var errUsage = errors.New("invalid usage")

func main() {
	log := logger.NewConsoleLogger("go-job-keeper-client")

	_ = godotenv.Load()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, serverAdapter, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			stop()
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "register", "login":
		if len(args) != 2 {
			return errUsage
		}
		req := models.AuthRequest{Email: args[0], Password: args[1]}

		var (
			resp models.AuthResponse
			err  error
		)
		if command == "register" {
			resp, err = api.Register(ctx, req)
		} else {
			resp, err = api.Login(ctx, req)
		}
		if err != nil {
			return err
		}
		return printJSON(resp)

	case "version":
		printBuildInfo()
		info, err := api.Version(ctx)
		if err != nil {
			return err
		}
		return printJSON(info)

	case "dashboard":
		page, perPage, err := pagingArgs(args)
		if err != nil {
			return err
		}
		summaries, err := api.Dashboard(ctx, page, perPage)
		if err != nil {
			return err
		}
		return printJSON(summaries)

	case "search":
		if len(args) != 1 {
			return errUsage
		}
		result, err := api.Search(ctx, models.SearchParams{Query: args[0]})
		if err != nil {
			return err
		}
		return printJSON(result)

	case "catalog":
		catalog, err := api.Catalog(ctx)
		if err != nil {
			return err
		}
		return printJSON(catalog)

	case "add":
		if len(args) != 2 {
			return errUsage
		}
		application, err := api.CreateApplication(ctx, models.ApplicationInput{Title: &args[0], Company: &args[1]})
		if err != nil {
			return err
		}
		return printJSON(application)

	case "folder":
		if len(args) != 1 {
			return errUsage
		}
		folder, err := api.CreateFolder(ctx, models.FolderInput{Title: &args[0]})
		if err != nil {
			return err
		}
		return printJSON(folder)

	default:
		return errUsage
	}
}

func pagingArgs(args []string) (int, int, error) {
	if len(args) > 2 {
		return 0, 0, errUsage
	}

	values := [2]int{}
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return 0, 0, errUsage
		}
		values[i] = n
	}

	return values[0], values[1], nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
