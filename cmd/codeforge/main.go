package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"codeforge/internal/catalog"
	"codeforge/internal/codegen"
	"codeforge/internal/config"
	"codeforge/internal/llmclient"
	"codeforge/internal/remote"
)

func main() {
	specFile := flag.String("spec", "", "path to the specification file")
	goals := flag.String("goals", "", "comma-separated high-level goals")
	agentID := flag.String("agent", "", "agent id owning the generated resources (default: random)")
	model := flag.String("model", "", "model id (overrides LLM_MODEL)")
	flag.Parse()

	if *specFile == "" {
		log.Fatal("--spec is required")
	}
	specText, err := os.ReadFile(*specFile)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *model != "" {
		cfg.LLM.Model = *model
	}
	owner := *agentID
	if owner == "" {
		owner = uuid.NewString()
	}

	ctx := context.Background()

	llm, err := newLLMClient(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	store, closeStore, err := newCatalogStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	uploader, err := newUploader(cfg)
	if err != nil {
		log.Fatal(err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	pipeline := &codegen.Pipeline{
		LLM:       llm,
		Goals:     splitGoals(*goals),
		MaxTokens: cfg.LLM.MaxTokens,
		Persister: &codegen.Persister{
			Catalog:  store,
			Uploader: uploader,
			Storage: catalog.StorageConfig{
				Type:     cfg.Storage.Type,
				Disabled: cfg.Storage.TrackingDisabled,
			},
			OutputRootDir: cfg.OutputRootDir,
			WorkDir:       workDir,
			AgentID:       owner,
		},
	}

	result := pipeline.Run(ctx, string(specText))
	fmt.Println(result)
	if codegen.IsErrorResult(result) {
		os.Exit(1)
	}
}

func newLLMClient(ctx context.Context, cfg *config.Config) (llmclient.Client, error) {
	var (
		inner llmclient.Client
		err   error
	)
	switch cfg.LLM.Provider {
	case "groq":
		inner, err = llmclient.NewGroqClient(cfg.LLM.APIKey, cfg.LLM.Model)
	default:
		inner, err = llmclient.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
	}
	if err != nil {
		return nil, err
	}
	cached, err := llmclient.NewCachedClient(inner, 128)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

func newCatalogStore(cfg *config.Config) (catalog.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Printf("catalog: no DATABASE_URL, using in-memory store")
		return catalog.NewMemoryStore(), func() {}, nil
	}
	pg, err := catalog.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	return pg, func() { _ = pg.Close() }, nil
}

func newUploader(cfg *config.Config) (remote.Uploader, error) {
	if !strings.EqualFold(cfg.Storage.Type, catalog.StorageS3) {
		return nil, nil
	}
	if !cfg.S3.CanUseS3() {
		return nil, fmt.Errorf("STORAGE_TYPE is S3 but the S3 config is incomplete")
	}
	store, err := remote.NewS3Store(remote.S3Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Bucket:    cfg.S3.Bucket,
		UseSSL:    cfg.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("remote store: s3 bucket=%s endpoint=%s", cfg.S3.Bucket, cfg.S3.Endpoint)
	return store, nil
}

func splitGoals(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
