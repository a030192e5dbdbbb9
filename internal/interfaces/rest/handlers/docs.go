package handlers

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Docs is the validated OpenAPI document of the channel.
type Docs struct {
	doc  *openapi3.T
	json []byte
}

func LoadDocs(ctx context.Context) (*Docs, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error marshalling openapi document: %w", err)
	}

	return &Docs{doc: doc, json: raw}, nil
}

func (d *Docs) Document() *openapi3.T {
	return d.doc
}

func (d *Docs) JSON() []byte {
	return d.json
}
