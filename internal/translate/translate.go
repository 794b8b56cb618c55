package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mgpai22/kashi/internal/lyrics"
)

// single lyric line to translate
type TranslationItem struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated lyric line
type TranslationResult struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for text translation
type Translator interface {
	Translate(
		ctx context.Context,
		items []TranslationItem,
	) ([]TranslationResult, error)
}

// optional interface for translators that support concurrent batch processing
type ConcurrentTranslator interface {
	Translator
	TranslateWithConcurrency(
		ctx context.Context,
		items []TranslationItem,
		concurrency int,
	) ([]TranslationResult, error)
}

// translation service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

type Options struct {
	InputLanguage  string
	TargetLanguage string
	Model          string
	Prompt         string
	BatchSize      int // items per API request (default 50)
}

// creates Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildPrompt creates the translation prompt for LLM providers
func BuildPrompt(opts Options, items []TranslationItem) string {
	var sb strings.Builder

	if opts.InputLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s song lyric lines to %s.\n\n",
			opts.InputLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following song lyric lines to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Each item is one sung line. Translate it on its own, never merge or split lines.\n")
	sb.WriteString("2. Keep the meaning and tone; do not add rhymes that change the meaning.\n")
	sb.WriteString("3. Leave names, interjections and ad-libs (oh, yeah, la la) untranslated.\n")
	sb.WriteString("4. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("5. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString("6. The 'index' values must match the input indices exactly.\n")
	sb.WriteString("7. Do not add any explanation or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(
			fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt),
		)
	}

	sb.WriteString("Input JSON:\n")

	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)

	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

// LinesToItems picks the non-blank lines of a track, indexed by position
func LinesToItems(lines []lyrics.Line) []TranslationItem {
	items := make([]TranslationItem, 0, len(lines))
	for i, line := range lines {
		text := strings.TrimSpace(line.Text())
		if text == "" {
			continue
		}
		items = append(items, TranslationItem{Index: i, Text: text})
	}
	return items
}

// BuildTrack maps results back onto the original timings. The track always
// has one line per original line; blank or untranslated lines are left
// without words.
func BuildTrack(original []lyrics.Line, results []TranslationResult) []lyrics.Line {
	byIndex := make(map[int]string, len(results))
	for _, r := range results {
		byIndex[r.Index] = strings.TrimSpace(r.Text)
	}

	track := make([]lyrics.Line, len(original))
	for i, line := range original {
		track[i] = lyrics.Line{Start: line.Start, End: line.End, Words: []lyrics.Word{}}
		if line.IsBlank() {
			continue
		}
		if text := byIndex[i]; text != "" {
			track[i].Words = []lyrics.Word{{Start: line.Start, End: line.End, Text: text}}
		}
	}
	return track
}

// TranslateLines translates every non-blank line and returns a track
// aligned with lines
func TranslateLines(
	ctx context.Context,
	t Translator,
	lines []lyrics.Line,
	concurrency int,
) ([]lyrics.Line, error) {
	items := LinesToItems(lines)

	var (
		results []TranslationResult
		err     error
	)
	if ct, ok := t.(ConcurrentTranslator); ok && concurrency > 1 {
		results, err = ct.TranslateWithConcurrency(ctx, items, concurrency)
	} else {
		results, err = t.Translate(ctx, items)
	}
	if err != nil {
		return nil, err
	}

	return BuildTrack(lines, results), nil
}
