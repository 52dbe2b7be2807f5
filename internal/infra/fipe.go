package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FipeClient queries the public Tabela FIPE API for vehicle reference
// prices, used by staff when appraising trade-ins and consignments. The
// upstream is rate-limited and occasionally flaky, so every call goes
// through the circuit breaker wired in the router.
type FipeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFipeClient(baseURL string) *FipeClient {
	return &FipeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FipeMarca is one brand entry from /carros/marcas.
type FipeMarca struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

// FipePreco is the price record for a brand/model/year triple.
type FipePreco struct {
	Valor         string `json:"Valor"`
	Marca         string `json:"Marca"`
	Modelo        string `json:"Modelo"`
	AnoModelo     int    `json:"AnoModelo"`
	Combustivel   string `json:"Combustivel"`
	CodigoFipe    string `json:"CodigoFipe"`
	MesReferencia string `json:"MesReferencia"`
}

// Marcas lists every car brand known to the FIPE table.
func (c *FipeClient) Marcas(ctx context.Context) ([]FipeMarca, error) {
	var marcas []FipeMarca
	if err := c.get(ctx, "/carros/marcas", &marcas); err != nil {
		return nil, err
	}
	return marcas, nil
}

// Modelos returns the raw model list of a brand. The upstream shape
// (modelos + anos) is passed through untouched.
func (c *FipeClient) Modelos(ctx context.Context, codigoMarca string) (json.RawMessage, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/carros/marcas/%s/modelos", url.PathEscape(codigoMarca))
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Preco returns the reference price for a brand/model/year triple.
func (c *FipeClient) Preco(ctx context.Context, codigoMarca, codigoModelo, codigoAno string) (*FipePreco, error) {
	var preco FipePreco
	path := fmt.Sprintf("/carros/marcas/%s/modelos/%s/anos/%s",
		url.PathEscape(codigoMarca), url.PathEscape(codigoModelo), url.PathEscape(codigoAno))
	if err := c.get(ctx, path, &preco); err != nil {
		return nil, err
	}
	return &preco, nil
}

func (c *FipeClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("fipe: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fipe: upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fipe: upstream returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fipe: decode response: %w", err)
	}
	return nil
}
