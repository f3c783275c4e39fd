package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haruto/threads-studio/internal/db"
	"github.com/haruto/threads-studio/internal/generation"
	"github.com/haruto/threads-studio/internal/llm"
	"github.com/haruto/threads-studio/internal/templates"
)

var (
	generateCount      int
	generateTemplateID string
	generateStructure  string
	generateProvider   string
	generateModel      string
	generateConfigPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate candidate posts from the command line",
	Long:  `Generate one or more candidate posts using the stored profile and a template, printing the candidates as JSON to stdout.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "Number of candidates to generate (1, 3, 5 or 10)")
	generateCmd.Flags().StringVar(&generateTemplateID, "template", "", "Template ID from the catalog")
	generateCmd.Flags().StringVar(&generateStructure, "structure", "", "Free-form template structure (overrides --template)")
	generateCmd.Flags().StringVar(&generateProvider, "provider", "", "Generation provider (openai, anthropic or google)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Model override for the provider")
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	// Flags reuse the serve config loader so file and env layering match.
	serveConfigPath = generateConfigPath
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateProvider != "" {
		cfg.Provider = generateProvider
	}
	if generateModel != "" {
		cfg.Model = generateModel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if !generation.ValidBatchSize(generateCount) {
		return fmt.Errorf("count must be 1, 3, 5 or 10")
	}

	structure := generateStructure
	if structure == "" {
		if generateTemplateID == "" {
			return fmt.Errorf("either --template or --structure is required")
		}
		template, ok := templates.ByID(generateTemplateID)
		if !ok {
			return fmt.Errorf("unknown template %q", generateTemplateID)
		}
		structure = template.Structure
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	profile, err := database.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("no profile is saved; configure one through the server first")
	}

	llmCfg := cfg.LLMConfig()
	client, err := llm.NewClient(ctx, llmCfg, llm.EnvAPIKey(llmCfg.Provider))
	if err != nil {
		return err
	}
	defer client.Close()

	svc := generation.NewService(client)
	req := generation.Request{
		Profile:           *profile,
		TemplateStructure: structure,
	}

	candidates, err := svc.GenerateBatch(ctx, req, generateCount)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(candidates)
}
