package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapterhttp "lingua-proxy/adapter/http"
	"lingua-proxy/adapter/http/middleware"
	"lingua-proxy/adapter/logging"
	"lingua-proxy/adapter/provider"
	"lingua-proxy/application/service"
	"lingua-proxy/domain/port"
	infraconfig "lingua-proxy/infrastructure/config"
	infrahttp "lingua-proxy/infrastructure/http"
	infralogging "lingua-proxy/infrastructure/logging"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("lingua-proxy %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	manager, err := infraconfig.NewManager(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := manager.Config()

	sugar, flush, err := infralogging.New(&cfg.Logging)
	if err != nil {
		log.Fatalf("failed to init logging: %v", err)
	}
	defer flush()
	logger := logging.NewZapLogger(sugar)

	if cfg.OpenAI.APIKey == "" {
		logger.Warn("chat provider API key is not set; translate and analyze will fail")
	}
	if cfg.Eleven.APIKey == "" {
		logger.Warn("speech provider API key is not set; synthesis will fail")
	}

	httpClient := infrahttp.NewHTTPClient(infrahttp.DefaultClientConfig())
	chat := provider.NewOpenAIClient(httpClient, cfg.OpenAI.GetBaseURL(), cfg.OpenAI.APIKey, cfg.OpenAI.GetModel(), logger)
	speech := provider.NewElevenLabsClient(httpClient, cfg.Eleven.GetBaseURL(), cfg.Eleven.APIKey, logger)

	presenter := adapterhttp.NewErrorPresenter(logger)
	handler := adapterhttp.NewProxyHandler(manager, chat, speech, service.NewPromptBuilder(), presenter, logger)
	health := adapterhttp.NewHealthHandler(manager, logger)

	mux := http.NewServeMux()
	mux.Handle("/health", health)
	mux.Handle("/", handler)

	limiter := middleware.NewRateLimiter(manager)
	chain := middleware.Recovery(logger)(limiter.Middleware(mux))

	server := infrahttp.NewServer(infrahttp.DefaultServerConfig(cfg.GetListen(), chain))

	logger.Info("lingua-proxy starting",
		port.String("version", Version),
		port.String("listen", cfg.GetListen()),
		port.String("model", cfg.OpenAI.GetModel()),
		port.Bool("chat_configured", cfg.OpenAI.APIKey != ""),
		port.Bool("tts_configured", cfg.Eleven.APIKey != ""))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			sugar.Fatalf("server failed: %v", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", port.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", port.Error(err))
		}
	}
}
