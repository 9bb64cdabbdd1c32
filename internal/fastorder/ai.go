package fastorder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"
)

// OrderItem est un couple SKU/quantité extrait par le collaborateur IA.
type OrderItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

var (
	// ErrStaleParse signale qu'une requête plus récente a été lancée
	// pendant que celle-ci était en vol : sa réponse doit être ignorée.
	ErrStaleParse = errors.New("analyse périmée, une requête plus récente est en cours")

	// ErrRateLimited est retryable côté client.
	ErrRateLimited = errors.New("limite de requêtes atteinte, réessayez dans un instant")

	// ErrQuotaExceeded signale un quota épuisé côté passerelle.
	ErrQuotaExceeded = errors.New("quota de la passerelle IA épuisé")
)

// AIClient interroge une passerelle compatible OpenAI pour extraire des
// couples SKU/quantité d'un texte libre. Il applique la discipline
// "dernière requête gagne" par session : il n'existe pas de jeton
// d'annulation, une réponse arrivée après le lancement d'une requête
// plus récente de la même session est simplement écartée. Les sessions
// sont indépendantes, une analyse en vol n'est jamais invalidée par
// celle d'un autre visiteur.
type AIClient struct {
	http       *http.Client
	gatewayURL string
	apiKey     string

	mu          sync.Mutex
	generations map[string]int64 // session id → dernière génération lancée
}

func NewAIClient() *AIClient {
	gatewayURL := os.Getenv("AI_GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	}

	return &AIClient{
		http:        &http.Client{Timeout: 30 * time.Second},
		gatewayURL:  gatewayURL,
		apiKey:      os.Getenv("AI_GATEWAY_KEY"),
		generations: make(map[string]int64),
	}
}

const parseSystemPrompt = `You are an order parsing assistant. Extract SKU codes and quantities from text.
- SKUs are typically alphanumeric codes (e.g., PAS-001, BEV-002)
- Quantities are positive integers
- Ignore invalid lines
- Be flexible with formatting (spaces, commas, tabs, line breaks)
- Common patterns: "SKU quantity", "SKU: quantity", "SKU,quantity"`

// Parse envoie le texte à la passerelle et retourne les couples
// extraits. Un échec distant n'affecte jamais le parsing manuel local,
// qui reste disponible en repli.
func (a *AIClient) Parse(ctx context.Context, sessionID, text string) ([]OrderItem, error) {
	if a.apiKey == "" {
		return nil, errors.New("AI_GATEWAY_KEY non configurée")
	}

	a.mu.Lock()
	a.generations[sessionID]++
	generation := a.generations[sessionID]
	a.mu.Unlock()

	payload := map[string]interface{}{
		"model": "google/gemini-2.5-flash",
		"messages": []map[string]string{
			{"role": "system", "content": parseSystemPrompt},
			{"role": "user", "content": text},
		},
		"tools": []map[string]interface{}{{
			"type": "function",
			"function": map[string]interface{}{
				"name":        "parse_order_items",
				"description": "Parse order items from text",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"items": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"sku":      map[string]string{"type": "string"},
									"quantity": map[string]string{"type": "number"},
								},
								"required": []string{"sku", "quantity"},
							},
						},
					},
					"required": []string{"items"},
				},
			},
		}},
		"tool_choice": map[string]interface{}{
			"type":     "function",
			"function": map[string]string{"name": "parse_order_items"},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("passerelle IA injoignable: %v", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, ErrQuotaExceeded
	default:
		return nil, fmt.Errorf("la passerelle IA a renvoyé %d", res.StatusCode)
	}

	var completion struct {
		Choices []struct {
			Message struct {
				ToolCalls []struct {
					Function struct {
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("réponse IA illisible: %v", err)
	}

	// Dernière requête de la session gagne
	a.mu.Lock()
	current := a.generations[sessionID]
	a.mu.Unlock()
	if current != generation {
		return nil, ErrStaleParse
	}

	if len(completion.Choices) == 0 || len(completion.Choices[0].Message.ToolCalls) == 0 {
		return nil, errors.New("aucun élément extrait par la passerelle IA")
	}

	var parsed struct {
		Items []OrderItem `json:"items"`
	}
	arguments := completion.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(arguments), &parsed); err != nil {
		return nil, fmt.Errorf("arguments IA illisibles: %v", err)
	}

	return parsed.Items, nil
}
