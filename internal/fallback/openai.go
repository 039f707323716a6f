package fallback

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"closedform/internal/solver"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are a mathematical reasoning service. Solve the problem exactly.
Respond with a single JSON object and nothing else:
{"answer": "<final numeric answer or short expression>",
 "steps": ["<derivation step>", ...],
 "reasoning": "<one-paragraph summary>",
 "citations": [{"title": "<title>", "uri": "<uri>"}]}
Omit citations if none apply. The answer must be exact, not approximate.`

// completionAPI is the slice of the go-openai client the reasoner uses.
// Narrowed to an interface so tests can substitute a scripted transport.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIReasoner implements Reasoner over the OpenAI chat completion API.
type OpenAIReasoner struct {
	client completionAPI
	model  string
	logger *slog.Logger
}

// ReasonerOption configures an OpenAIReasoner.
type ReasonerOption func(*OpenAIReasoner)

// WithModel overrides the completion model.
func WithModel(model string) ReasonerOption {
	return func(r *OpenAIReasoner) {
		if model != "" {
			r.model = model
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ReasonerOption {
	return func(r *OpenAIReasoner) {
		r.logger = l
	}
}

// withCompletionAPI substitutes the transport. Test hook.
func withCompletionAPI(api completionAPI) ReasonerOption {
	return func(r *OpenAIReasoner) {
		r.client = api
	}
}

// NewOpenAIReasoner creates a reasoner authenticated with the given API
// key. The key is a constructor parameter, never read from a global.
func NewOpenAIReasoner(apiKey string, opts ...ReasonerOption) *OpenAIReasoner {
	r := &OpenAIReasoner{
		client: openai.NewClient(apiKey),
		model:  DefaultModel,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// reasonerReply is the JSON payload the service is instructed to return.
type reasonerReply struct {
	Answer    string   `json:"answer"`
	Steps     []string `json:"steps"`
	Reasoning string   `json:"reasoning"`
	Citations []struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"citations"`
}

// Ask implements Reasoner. Transport and parse failures produce an outcome
// with an absent answer and an error-severity log entry rather than an
// error return, so the orchestrator merges both paths uniformly.
func (r *OpenAIReasoner) Ask(ctx context.Context, q Query) (*solver.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userContent := q.Problem
	if q.ImageURL != "" {
		userContent += "\n(An image of the problem is available at: " + q.ImageURL + ")"
	}

	req := openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
	}
	if q.HighReasoning {
		req.ReasoningEffort = "high"
	}

	r.logger.Debug("consulting fallback reasoner",
		"model", r.model,
		"high_reasoning", q.HighReasoning,
		"has_image", q.ImageURL != "",
	)

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Error("fallback call failed", "error", err)
		return failureOutcome("reasoning service call failed: %v", err), nil
	}
	if len(resp.Choices) == 0 {
		r.logger.Warn("fallback returned no choices")
		return failureOutcome("reasoning service returned no choices"), nil
	}

	return r.parse(resp.Choices[0].Message.Content), nil
}

// parse converts the model's reply into the shared outcome shape.
// A reply that is not the requested JSON is still useful: it becomes the
// reasoning text with a placeholder answer.
func (r *OpenAIReasoner) parse(content string) *solver.Outcome {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var reply reasonerReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil || reply.Answer == "" {
		r.logger.Warn("fallback reply was not structured; keeping raw text")
		out := &solver.Outcome{
			Answer:    "(unstructured)",
			Tag:       solver.TagQuantumFallback,
			Reasoning: content,
		}
		out.AddStep("External reasoner replied without the requested structure.")
		out.AddLog(solver.SeverityWarn, "unstructured fallback reply")
		return out
	}

	out := &solver.Outcome{
		Answer:    reply.Answer,
		Tag:       solver.TagQuantumFallback,
		Steps:     reply.Steps,
		Reasoning: reply.Reasoning,
	}
	for _, c := range reply.Citations {
		out.Citations = append(out.Citations, solver.Citation{Title: c.Title, URI: c.URI})
	}
	if len(out.Steps) == 0 {
		out.AddStep("Answer produced by the external reasoning service.")
	}
	out.AddLog(solver.SeverityInfo, "fallback reasoner answered")
	return out
}

// failureOutcome is the uniform failure shape: answer absent, error log.
func failureOutcome(format string, args ...any) *solver.Outcome {
	out := &solver.Outcome{}
	out.AddStep("External reasoning service was unavailable.")
	out.AddLog(solver.SeverityError, format, args...)
	return out
}
