package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/figtreehq/figtree/figma"
	"github.com/figtreehq/figtree/server"
)

const version = "0.1.0"

// fileConfig is the optional YAML configuration file.
type fileConfig struct {
	Token    string `yaml:"token"`
	BaseURL  string `yaml:"base_url"`
	LogLevel string `yaml:"log_level"`
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("figtree", pflag.ContinueOnError)
	token := flags.String("token", "", "Figma personal access token")
	configPath := flags.String("config", "", "path to a YAML config file")
	logLevel := flags.String("log-level", "info", "log level: debug, info, warn, error")
	showVersion := flags.Bool("version", false, "print version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if *showVersion {
		fmt.Printf("figtree %s\n", version)
		return 0
	}

	var cfg fileConfig
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		cfg = loaded
	}

	// Precedence: flag, config file, environment.
	resolved := *token
	if resolved == "" {
		resolved = cfg.Token
	}
	if resolved == "" {
		resolved = os.Getenv("FIGMA_TOKEN")
	}
	if resolved == "" {
		fmt.Fprintln(os.Stderr, "error: a Figma access token is required (--token, config file, or FIGMA_TOKEN)")
		return 2
	}

	if cfg.LogLevel != "" && !flags.Changed("log-level") {
		*logLevel = cfg.LogLevel
	}
	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client, err := figma.NewClient(figma.Config{
		Token:   resolved,
		BaseURL: cfg.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	srv, err := server.New(server.Config{
		Client: client,
		Info:   server.ServerInfo{Name: "figtree", Version: version},
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server exited", "error", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
