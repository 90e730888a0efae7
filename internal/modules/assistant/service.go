package assistant

import (
	"context"
	"log"

	"geministore.com/app/internal/modules/catalog"
)

// User-visible texts. Wording is fixed; the storefront shows these verbatim.
const (
	SystemInstruction = "You are a friendly shopping assistant for GeminiStore."

	GreetingMessage    = "Hi! How can I help you shop today?"
	UnavailableMessage = "Chatbot unavailable."
	ChatErrorMessage   = "Sorry, error getting response."

	NoticeDisabled  = "Live product updates unavailable. Displaying sample items."
	NoticeEmptyList = "Received empty product list from API. Displaying samples."
	NoticeFailed    = "Could not update products. Displaying sample items."
)

const catalogPrompt = `Generate a list of 12 diverse electronic product details. Each product needs:
- id: unique string (e.g., "prod-uuid")
- name: compelling product name (2-5 words)
- description: Short, enticing description (10-20 words).
- price: number (e.g., 29.99, 1249.00)
- category: Choose from "Audio", "Smart Home", "Computing", "Gaming", "Cameras", "Wearables", "Mobiles", "TV & Video", "Accessories".
- imageUrl: placeholder URL from https://via.placeholder.com/300x200 (e.g., /007BFF/FFFFFF?Text=Product)
- stock: a number between 0 and 50. Ensure at least two products have 0 stock and several have low stock (1-5).

Output ONLY the JSON array of objects. Example:
[
  { "id": "prod-1", "name": "Gizmo X1", "description": "Amazing new features for everyday use.", "price": 19.99, "category": "Accessories", "imageUrl": "https://via.placeholder.com/300x200/007BFF/FFFFFF?Text=Gizmo", "stock": 10 }
]`

// Message is one chat turn. Role is "user" or "model".
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Service wraps the Gemini client for the two storefront uses: seeding the
// catalog and the shopping chat. A nil client means disabled, not broken.
type Service struct {
	client *Client
}

func NewService(client *Client) *Service {
	return &Service{client: client}
}

func (s *Service) Enabled() bool { return s.client != nil }

// Greeting is the first message shown when the chat panel opens.
func (s *Service) Greeting() string {
	if s.Enabled() {
		return GreetingMessage
	}
	return UnavailableMessage
}

// GenerateCatalog returns 12 generated products, or the sample list plus a
// notice when the assistant is disabled or the output fails validation.
// An empty notice means the generated list was accepted.
func (s *Service) GenerateCatalog(ctx context.Context) ([]catalog.Product, string) {
	if !s.Enabled() {
		return catalog.Fallback(), NoticeDisabled
	}

	raw, err := s.client.generate(ctx, generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: catalogPrompt}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		log.Printf("assistant: catalog generation failed: %v", err)
		return catalog.Fallback(), NoticeFailed
	}

	products, err := ParseCatalog(raw)
	if err != nil {
		log.Printf("assistant: %v", err)
		if pe, ok := err.(*ParseError); ok && pe.Reason == "empty product list" {
			return catalog.Fallback(), NoticeEmptyList
		}
		return catalog.Fallback(), NoticeFailed
	}
	return products, ""
}

// Chat runs one turn against the prior history. Errors are returned as the
// fixed error text with ok=false so the panel can style them; a chat turn
// never fails the request.
func (s *Service) Chat(ctx context.Context, history []Message, message string) (reply string, ok bool) {
	if !s.Enabled() {
		return UnavailableMessage, false
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		role := m.Role
		if role != "model" {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	raw, err := s.client.generate(ctx, generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: SystemInstruction}}},
	})
	if err != nil {
		log.Printf("assistant: chat turn failed: %v", err)
		return ChatErrorMessage, false
	}
	return raw, true
}
