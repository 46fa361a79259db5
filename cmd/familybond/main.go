// ABOUTME: CLI entrypoint for the familybond site with serve, seed, and legal commands.
// ABOUTME: Wires together the content store, session guard, object store, and signal handling.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/familybond-au/familybond/blob"
	"github.com/familybond-au/familybond/content"
	"github.com/familybond-au/familybond/legal"
	"github.com/familybond-au/familybond/seed"
	"github.com/familybond-au/familybond/server"
	"github.com/familybond-au/familybond/store"
	"github.com/familybond-au/familybond/web"
)

var version = "dev"

func main() {
	loadDotEnv(".env")

	fs := flag.NewFlagSet("familybond", flag.ContinueOnError)
	showVersion := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		printHelp(os.Stderr, version)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if *showVersion {
		fmt.Printf("familybond %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(fs.Args()))
}

// run dispatches to the named command. No command means serve.
func run(args []string) int {
	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "serve":
		return runServe(ctx)
	case "seed":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "error: seed requires a content file, e.g. familybond seed content.yaml")
			return 2
		}
		return runSeed(ctx, args[1])
	case "legal":
		outDir := "legal-out"
		if len(args) > 1 {
			outDir = args[1]
		}
		return runLegal(outDir)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", cmd)
		printHelp(os.Stderr, version)
		return 2
	}
}

// openStore selects the KV backend: Redis when REDIS_URL is set, otherwise
// sqlite under the data directory.
func openStore(ctx context.Context, cfg *server.Config) (store.KV, error) {
	if cfg.RedisURL != "" {
		kv, err := store.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		log.Printf("component=main action=store backend=redis")
		return kv, nil
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(cfg.DataDir, "content.db")
	kv, err := store.OpenSqlite(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	log.Printf("component=main action=store backend=sqlite path=%s", path)
	return kv, nil
}

// openObjects wires the S3 object store, or returns nil (uploads disabled)
// when no bucket is configured.
func openObjects(ctx context.Context, cfg *server.Config) (blob.ObjectStore, error) {
	if cfg.S3Bucket == "" {
		log.Printf("component=main action=objects status=disabled")
		return nil, nil
	}
	objects, err := blob.NewS3(ctx, blob.S3Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("open object store: %w", err)
	}
	log.Printf("component=main action=objects bucket=%s region=%s", cfg.S3Bucket, cfg.S3Region)
	return objects, nil
}

// runServe starts the HTTP server and blocks until interrupted.
func runServe(ctx context.Context) int {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	kv, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer kv.Close()

	objects, err := openObjects(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	srv, err := web.NewServer(web.ServerConfig{
		Addr:     cfg.Addr,
		Accessor: content.NewAccessor(kv),
		Sessions: server.NewSessions(cfg.AdminPassword, cfg.SessionSecret),
		Objects:  objects,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	log.Printf("component=main action=serve addr=%s", cfg.Addr)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runSeed backs up current content and applies a seed file to the store.
func runSeed(ctx context.Context, seedPath string) int {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	kv, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer kv.Close()

	backupDir := filepath.Join(cfg.DataDir, "backups")
	if err := seed.Run(ctx, kv, backupDir, seedPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("Seed applied from %s (backup in %s).\n", seedPath, backupDir)
	return 0
}

// runLegal writes the rendered legal documents to outDir as standalone HTML.
func runLegal(outDir string) int {
	if err := legal.Generate(outDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("Legal documents written to %s.\n", outDir)
	return 0
}
