package assistant

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"geministore.com/app/internal/modules/catalog"
)

// ParseError means the model's output could not be turned into a usable
// catalog. Callers fall back to the sample list; they never partially apply.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assistant: parse catalog: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("assistant: parse catalog: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Models wrap JSON in markdown fences more often than not.
var fenceRe = regexp.MustCompile("(?s)^```(\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil && m[2] != "" {
		return strings.TrimSpace(m[2])
	}
	return s
}

// wireProduct tolerates a missing stock field; everything else is checked.
type wireProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Stock       *int    `json:"stock"`
}

// ParseCatalog validates the model output strictly: fence-stripped JSON
// array, nonempty id and name, price > 0, stock >= 0 (default 10 when the
// field is absent). Any violation rejects the whole batch.
func ParseCatalog(raw string) ([]catalog.Product, error) {
	text := stripFences(raw)

	var wire []wireProduct
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if len(wire) == 0 {
		return nil, &ParseError{Reason: "empty product list"}
	}

	products := make([]catalog.Product, 0, len(wire))
	for i, w := range wire {
		if w.ID == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("product %d: missing id", i)}
		}
		if w.Name == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("product %d: missing name", i)}
		}
		if w.Price <= 0 {
			return nil, &ParseError{Reason: fmt.Sprintf("product %d: price %v out of range", i, w.Price)}
		}
		stock := 10
		if w.Stock != nil {
			stock = *w.Stock
		}
		if stock < 0 {
			return nil, &ParseError{Reason: fmt.Sprintf("product %d: negative stock %d", i, stock)}
		}
		imageURL := w.ImageURL
		if imageURL == "" {
			imageURL = catalog.CategoryImage(w.Category)
		}
		products = append(products, catalog.Product{
			ID:          w.ID,
			Name:        w.Name,
			Description: w.Description,
			Price:       w.Price,
			Category:    w.Category,
			ImageURL:    imageURL,
			Stock:       stock,
		})
	}
	return products, nil
}
