package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"web-summarizer/internal/session"
)

const (
	defaultChatTimeout     = 60 * time.Second
	defaultChatTemperature = 0.1
)

const summarizeSystemPrompt = `You are a polite and concise assistant. Summarize the provided webpage
content in a few short paragraphs. Cover the main points faithfully, keep a
neutral tone, and do not add information that is not in the content.`

const topicPromptTemplate = `You are given a summary of a webpage.
Write a single, friendly, neutral, and polite TOPIC line in Title Case.
Constraints:
- Maximum 6 words.
- No emojis.
- No trailing punctuation.
- Be specific, not clickbait.

Summary:
%s

Topic:`

const followupPromptTemplate = `You can use ONLY the provided summary and the chat_history.
If the answer is not present in the summary, reply exactly: "I don't know based on the summary."
Then suggest summarizing another URL for more context.

chat_history:
%s

summary:
%s

question: %s
answer:`

// OpenAIClient calls a Chat Completions API, either api.openai.com or any
// OpenAI-compatible backend (e.g. a local Ollama server) via baseURL.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAIClient builds a client. baseURL is optional; empty means the
// hosted OpenAI endpoint.
func NewOpenAIClient(apiKey string, model openai.ChatModel, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" && baseURL == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, content string) (string, error) {
	return c.complete(ctx, summarizeSystemPrompt, content)
}

func (c *OpenAIClient) Topic(ctx context.Context, summary string) (string, error) {
	return c.complete(ctx, "", fmt.Sprintf(topicPromptTemplate, summary))
}

func (c *OpenAIClient) Answer(ctx context.Context, question, summary string, history []session.Turn) (string, error) {
	prompt := fmt.Sprintf(followupPromptTemplate, formatHistory(history), summary, question)
	return c.complete(ctx, "", prompt)
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(system, user),
		Temperature: openai.Float(defaultChatTemperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessageParamUnion{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		})
	}
	return append(messages, openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: openai.String(user),
			},
		},
	})
}

// formatHistory renders the turn window oldest-first for the follow-up prompt.
func formatHistory(history []session.Turn) string {
	if len(history) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for _, turn := range history {
		sb.WriteString("Human: ")
		sb.WriteString(turn.Question)
		sb.WriteString("\nAI: ")
		sb.WriteString(turn.Answer)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
