package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/config"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/apiclient"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/dashboard"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/documents"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/legal"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/pii"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/requests"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/supervision"
)

var (
	serverURL string
	authToken string
	tone      string
	provider  string
	respond   bool
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the server health and provider configuration",
	Run: func(cmd *cobra.Command, args []string) {
		client := dashboard.NewClient(newAPIClient())
		status, err := client.Health(context.Background())
		if err != nil {
			log.Fatalf("health check failed: %s", err)
		}
		printJSON(status)
	},
}

var maskCmd = &cobra.Command{
	Use:   "mask [text]",
	Short: "Mask personal data in the given text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pipeline := requests.NewPipeline(newAPIClient())
		mappings, err := pipeline.MaskPII(context.Background(), args[0])
		if err != nil {
			log.Fatalf("masking failed: %s", err)
		}
		fmt.Println(pii.MaskPreview(args[0], mappings))
		for _, m := range mappings {
			fmt.Printf("%s -> %s\n", m.Original, m.Masked)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [text]",
	Short: "Generate response drafts for a resident request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pipeline := requests.NewPipeline(newAPIClient())
		pipeline.OnStage(func(stage requests.Stage) {
			log.Infof("stage: %s", stage)
		})
		result, err := pipeline.Generate(context.Background(), args[0], tone)
		if err != nil {
			log.Fatalf("generation failed: %s", err)
		}
		printJSON(result)
	},
}

var legalCmd = &cobra.Command{
	Use:   "legal [query]",
	Short: "Ask the legal consultant; without a query, list the quick questions",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			for _, q := range legal.QuickQuestions {
				fmt.Println(q)
			}
			return
		}
		client := legal.NewClient(newAPIClient())
		result, err := client.Ask(context.Background(), args[0], provider)
		if err != nil {
			log.Fatalf("consultation failed: %s", err)
		}
		printJSON(result)
	},
}

var documentsCmd = &cobra.Command{
	Use:   "documents [file]",
	Short: "List knowledge-base documents; with a file argument, upload it first",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := documents.NewClient(newAPIClient())

		if len(args) == 1 {
			file, err := os.Open(args[0])
			if err != nil {
				log.Fatalf("cannot open %s: %s", args[0], err)
			}
			defer file.Close()

			uploaded, err := client.Upload(context.Background(), filepath.Base(args[0]), file)
			if err != nil {
				log.Fatalf("upload failed: %s", err)
			}
			log.Infof("uploaded %s (%s)", uploaded.Filename, uploaded.Status)
		}

		items, err := client.List(context.Background())
		if err != nil {
			log.Fatalf("listing documents failed: %s", err)
		}
		printJSON(items)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a supervisory order (PDF/DOCX/TXT) and optionally draft the reply",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("cannot open %s: %s", args[0], err)
		}
		defer file.Close()

		analyzer := supervision.NewAnalyzer(newAPIClient())
		analysis, err := analyzer.Analyze(context.Background(), filepath.Base(args[0]), file)
		if err != nil {
			log.Fatalf("analysis failed: %s", err)
		}
		printJSON(analysis)

		if respond {
			reply, err := analyzer.GenerateResponse(context.Background())
			if err != nil {
				log.Fatalf("response generation failed: %s", err)
			}
			fmt.Println(reply.Response)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{healthCmd, maskCmd, generateCmd, legalCmd, documentsCmd, analyzeCmd} {
		c.Flags().StringVar(&serverURL, "server", "", "server base URL (default from config)")
		c.Flags().StringVar(&authToken, "token", "", "bearer token for authenticated servers")
	}
	generateCmd.Flags().StringVar(&tone, "tone", "", "response tone filter")
	legalCmd.Flags().StringVar(&provider, "provider", legal.ProviderDeepSeek, "LLM provider (deepseek or gigachat)")
	analyzeCmd.Flags().BoolVar(&respond, "respond", false, "also draft the official reply")
}

func newAPIClient() *apiclient.Client {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	baseURL := serverURL
	if baseURL == "" {
		baseURL = cfg.API.BaseURL
	}
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second

	return apiclient.NewClient(baseURL, apiclient.NewCredentials(authToken), timeout)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encoding output: %s", err)
	}
	fmt.Println(string(out))
}
