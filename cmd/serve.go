package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/akhila-3010/job-tracker/internal/ai"
	"github.com/akhila-3010/job-tracker/internal/ai/gemini"
	"github.com/akhila-3010/job-tracker/internal/chat"
	"github.com/akhila-3010/job-tracker/internal/jobs"
	"github.com/akhila-3010/job-tracker/internal/jobs/jsearch"
	"github.com/akhila-3010/job-tracker/internal/logger"
	"github.com/akhila-3010/job-tracker/internal/match"
	"github.com/akhila-3010/job-tracker/internal/secrets"
	"github.com/akhila-3010/job-tracker/internal/server"
	"github.com/akhila-3010/job-tracker/internal/store"
)

const defaultListenAddr = ":3001"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the job-tracker HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "listen address, overrides server.addr")
}

func serve(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the job-tracker", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	st := store.Open(ctx, redisURL(config), logger)

	source := jobs.NewSource(newUpstream(config, logger), st, logger)

	generator, err := newGenerator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("AI scoring disabled", zap.Error(err))
	}

	maxLogLen := 0
	if config.AI != nil && config.AI.Gemini != nil {
		maxLogLen = config.AI.Gemini.MaxLogLength
	}

	matcher := match.NewMatcher(generator, logger, maxLogLen)
	chatRouter := chat.NewRouter(generator, matcher, logger, maxLogLen)

	srv := server.New(server.Deps{
		Source:  source,
		Matcher: matcher,
		Chat:    chatRouter,
		Store:   st,
		Logger:  logger,
	})

	addr := listenAddr(cmd, config)
	if err := srv.Run(ctx, addr); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "shutdown signal received"))
}

func redisURL(config *Config) string {
	if config.Redis != nil && config.Redis.URL != "" {
		return config.Redis.URL
	}
	return viper.GetString("redis.url")
}

func listenAddr(cmd *cobra.Command, config *Config) string {
	if flag := cmd.Flag("addr"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String()
	}
	if config.Server != nil && config.Server.Addr != "" {
		return config.Server.Addr
	}
	if addr := viper.GetString("server.addr"); addr != "" {
		return addr
	}
	return defaultListenAddr
}

// newUpstream builds the JSearch client when a key is configured. A nil
// upstream means searches are served from the built-in dataset.
func newUpstream(config *Config, logger *zap.Logger) jobs.Upstream {
	keyFile := ""
	if config.Jobs != nil {
		keyFile = config.Jobs.RapidAPIKeyFile
	}

	apiKey, err := secrets.LoadOptional(secrets.Source{
		Name: "rapidapi key",
		File: keyFile,
		Env:  "RAPIDAPI_KEY",
	})
	if err != nil {
		logger.Warn("loading rapidapi key failed, using the built-in dataset", zap.Error(err))
		return nil
	}
	if apiKey == "" {
		logger.Info("no rapidapi key configured, using the built-in dataset")
		return nil
	}

	return jsearch.New(apiKey, logger)
}

func newGenerator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Generator, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
}
