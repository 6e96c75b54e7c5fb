package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"qexpand/internal/config"
	"qexpand/internal/domain"
	"qexpand/internal/feedback"
	"qexpand/internal/fetch"
	"qexpand/internal/index"
	"qexpand/internal/logging"
	"qexpand/internal/order"
	"qexpand/internal/search"
	"qexpand/internal/selector"
	"qexpand/internal/tokenizer"
	"qexpand/internal/tui"
)

const usage = `Usage: qexpand [--config=config.yaml] <api_key> <engine_id> <target_precision> "<query>"
       qexpand [--config=config.yaml] <target_precision> "<query>"

The short form reads GOOGLE_API_KEY and GOOGLE_ENGINE_ID from the
environment (a .env file is honored).`

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "Path to config YAML")
	flag.Parse()

	apiKey, engineID, target, initialQuery := parseArgs(flag.Args())

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	// Assemble components via interfaces
	tk := tokenizerFromConfig(cfg)

	var sel domain.TermSelector
	switch cfg.Selector.Type {
	case "tfidf", "":
		sel = selector.NewSummedTFIDF(cfg.Selector.MaxNewTerms)
	case "rocchio":
		sel = selector.NewRocchio(cfg.Selector.Alpha, cfg.Selector.Beta, cfg.Selector.Gamma, cfg.Selector.MaxNewTerms)
	default:
		log.Fatalf("unknown selector: %s", cfg.Selector.Type)
	}

	var judge domain.Judge
	switch cfg.UI.Mode {
	case "tui", "":
		judge = tui.NewJudge()
	case "plain":
		judge = tui.NewPlainJudge(os.Stdin, os.Stdout)
	default:
		log.Fatalf("unknown ui mode: %s", cfg.UI.Mode)
	}

	table, err := order.LoadTable(cfg.Orderer.CorpusPath)
	if err != nil {
		log.Fatalf("failed to load reference corpus: %v", err)
	}

	searcher := search.NewClient(search.Config{
		APIKey:   apiKey,
		EngineID: engineID,
		Timeout:  time.Duration(cfg.Search.TimeoutSecs) * time.Second,
	})
	fetcher := fetch.New(time.Duration(cfg.Indexing.FetchTimeoutSecs) * time.Second)
	indexer := index.New(tk, fetcher, cfg.Indexing.FullText, cfg.Indexing.FetchConcurrency)

	loop := feedback.NewLoop(searcher, judge, indexer, sel, order.New(table), target)
	res, err := loop.Run(context.Background(), strings.Fields(initialQuery))
	if err != nil {
		log.Fatalf("session ended: %v", err)
	}

	fmt.Println("\n==================== Finished ====================")
	fmt.Printf("Stopped after %d iteration(s): %s\n", res.Iterations, res.Reason)
	fmt.Printf("Final query: %s\n", strings.Join(res.Query, " "))
}

// parseArgs accepts either four positional arguments (API key, engine
// id, target precision, query) or two (precision, query) with the
// credentials taken from the environment. Anything else is a usage
// error and exits non-zero.
func parseArgs(args []string) (apiKey, engineID string, target float64, query string) {
	switch len(args) {
	case 4:
		apiKey, engineID = args[0], args[1]
		args = args[2:]
	case 2:
		apiKey = os.Getenv("GOOGLE_API_KEY")
		engineID = os.Getenv("GOOGLE_ENGINE_ID")
		if apiKey == "" || engineID == "" {
			fmt.Fprintln(os.Stderr, "Error: GOOGLE_API_KEY and GOOGLE_ENGINE_ID must be set for the short form.")
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	target, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: target_precision must be a float (e.g., 0.9).")
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	query = strings.Trim(args[1], "\"")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "Error: query must not be empty.")
		os.Exit(1)
	}
	return apiKey, engineID, target, query
}

func tokenizerFromConfig(cfg *config.AppConfig) *tokenizer.Tokenizer {
	if cfg.Tokenizer.Stemming {
		return tokenizer.New(tokenizer.WithStemming())
	}
	return tokenizer.New()
}
