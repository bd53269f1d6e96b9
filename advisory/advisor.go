// Package advisory bridges the chat surface to the generative-AI backend.
// Each call is stateless: the prompt plus a fixed persona instruction,
// optionally extended with the service order under analysis, goes out and
// one text comes back. The chat surface must never see a raw failure, so
// every error collapses to a fixed user-safe message.
package advisory

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/lexflow/lexflow-api/models"
)

// User-facing messages, kept in the office's locale.
const (
	// FallbackMessage replaces any transport, auth, or decoding failure.
	FallbackMessage = "Desculpe, ocorreu um erro ao consultar a Inteligência Artificial. Verifique sua chave de API."
	// EmptyResponseMessage replaces a successful call that produced no text.
	EmptyResponseMessage = "Não foi possível gerar uma resposta no momento."
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-3-flash-preview"

// callTimeout bounds the worst-case latency of one advisory call.
const callTimeout = 30 * time.Second

// Advisor produces a contextual legal suggestion for one prompt. The second
// argument optionally supplies the service order under analysis.
type Advisor interface {
	Advise(ctx context.Context, prompt string, contextOrder *models.ServiceOrder) string
}

// generator is the raw call to the text-generation service, swappable for a
// test double.
type generator interface {
	generate(ctx context.Context, model, prompt, systemInstruction string) (string, error)
}

// Gemini is the production Advisor backed by the Gemini API.
type Gemini struct {
	gen   generator
	model string
}

// NewGemini creates an Advisor talking to the Gemini API with the given key
// and model; an empty model falls back to DefaultModel.
func NewGemini(apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{gen: geminiGenerator{client: client}, model: model}, nil
}

// Advise sends the prompt with the assembled system instruction. Any failure
// is logged for diagnostics and replaced by the fixed fallback text.
func (g *Gemini) Advise(ctx context.Context, prompt string, contextOrder *models.ServiceOrder) string {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	text, err := g.gen.generate(ctx, g.model, prompt, systemInstruction(contextOrder))
	if err != nil {
		zap.S().Errorw("advisory call failed", "error", err)
		return FallbackMessage
	}
	if text == "" {
		return EmptyResponseMessage
	}
	return text
}

type geminiGenerator struct {
	client *genai.Client
}

func (g geminiGenerator) generate(ctx context.Context, model, prompt, instruction string) (string, error) {
	temperature := float32(0.7)
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
			Temperature:       &temperature,
			MaxOutputTokens:   800,
		})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// systemInstruction builds the persona preamble, extended with a structured
// dump of the order under analysis when one is supplied.
func systemInstruction(contextOrder *models.ServiceOrder) string {
	instruction := `Você é um assistente jurídico sênior de um escritório de advocacia de alto nível.
Seu tom deve ser profissional, objetivo, estratégico e formal (jurídico).
Você auxilia advogados na tomada de decisão, gestão de prazos e definição de estratégias processuais.
Responda em Português do Brasil.`

	if contextOrder != nil {
		instruction += fmt.Sprintf(`

ESTÁ SENDO ANALISADA A SEGUINTE ORDEM DE SERVIÇO (OS):
- Número: %s
- Cliente: %s
- Área: %s
- Status: %s
- Descrição do Caso: %s
- Estratégia Atual: %s
- Métodos: %s
- Prazos: %s

Use essas informações para fornecer respostas específicas e contextualizadas sobre este caso.`,
			contextOrder.OSNumber,
			contextOrder.ClientName,
			contextOrder.LegalArea,
			contextOrder.Status,
			contextOrder.Description,
			contextOrder.Strategy,
			contextOrder.Methods,
			contextOrder.Deadlines,
		)
	}
	return instruction
}
