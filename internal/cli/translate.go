package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mgpai22/kashi/internal/translate"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [lyrics_file]",
	Short: "Fill the translation track of parsed lyrics using AI",
	Long: `Translate the lines of a parsed lyrics file with an LLM and store the
result as its translation track, timed like the original lines.

Lyrics that already carry a translation are left untouched unless --force
is given.

Examples:
  kashi translate song.yrc -f yrc -t english
  kashi translate song.qrc -f qrc -t ja --provider anthropic -o song.ass
  kashi translate song.krc -f krc -t spanish --force --output-format lrc`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("language", "l", "", "Language of the lyrics (optional hint)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set KASHI_API_KEY or the provider env var)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		String("provider", "", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().
		String("prompt", "", "Additional instructions for the model")
	translateCmd.Flags().
		Int("concurrency", 0, "Number of parallel translation workers")
	translateCmd.Flags().
		Int("batch-size", 0, "Number of lyric lines per API request")
	translateCmd.Flags().
		Bool("force", false, "Replace an existing translation track")

	_ = translateCmd.MarkFlagRequired("target-language")
}

// provider specific variable checked after the flag and config
func apiKeyEnvVar(provider translate.Provider) string {
	switch provider {
	case translate.ProviderGemini:
		return "GEMINI_API_KEY"
	case translate.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case translate.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "KASHI_API_KEY"
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	inputLang, _ := cmd.Flags().GetString("language")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	prompt, _ := cmd.Flags().GetString("prompt")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	force, _ := cmd.Flags().GetBool("force")

	if strings.TrimSpace(targetLang) == "" {
		return fmt.Errorf("target language is required")
	}
	if inputLang != "" &&
		strings.EqualFold(strings.TrimSpace(inputLang), strings.TrimSpace(targetLang)) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	if providerStr == "" {
		providerStr = cfg.Translate.Provider
	}
	if model == "" {
		model = cfg.Translate.Model
	}
	if concurrency == 0 {
		concurrency = cfg.Translate.Concurrency
	}
	if batchSize == 0 {
		batchSize = cfg.Translate.BatchSize
	}
	if concurrency < 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize < 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	provider := translate.Provider(strings.ToLower(providerStr))

	if apiKey == "" {
		apiKey = cfg.Translate.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			apiKeyEnvVar(provider),
		)
	}

	res, err := loadLyrics(cmd, args[0])
	if err != nil {
		return err
	}
	if len(res.Original) == 0 {
		return fmt.Errorf("lyrics contain no lines to translate")
	}

	if filledLines(res.Translated) > 0 && !force {
		logger.Warnw("Lyrics already have a translation, use --force to replace it",
			"translated", filledLines(res.Translated),
		)
		return exportResult(cmd, res)
	}

	translator, err := translate.Factory(ctx, provider, apiKey, translate.Options{
		InputLanguage:  inputLang,
		TargetLanguage: targetLang,
		Model:          model,
		Prompt:         prompt,
		BatchSize:      batchSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Infow("Translating lyrics",
		"provider", provider,
		"target_language", targetLang,
		"lines", len(res.Original),
		"concurrency", concurrency,
	)

	track, err := translate.TranslateLines(ctx, translator, res.Original, concurrency)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	res.Translated = track

	logger.Infow("Translation complete", "translated", filledLines(track))

	return exportResult(cmd, res)
}
