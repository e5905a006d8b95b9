package solana

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Fixed buy parameters: every quote prices 0.01 SOL of the target token
// with 15% slippage tolerance.
const (
	WSOLMint         = "So11111111111111111111111111111111111111112"
	QuoteLamports    = 10_000_000
	QuoteSlippageBps = 1500
)

type JupiterClient struct {
	Base string
	Http *http.Client
}

type Quote struct {
	InputMint      string  `json:"inputMint"`
	OutputMint     string  `json:"outputMint"`
	InAmount       string  `json:"inAmount"`
	OutAmount      string  `json:"outAmount"`
	OtherAmount    string `json:"otherAmountThreshold"`
	SlippageBps    int    `json:"slippageBps"`
	RoutePlan      any    `json:"routePlan"`
	PriceImpactPct string `json:"priceImpactPct"`
}

func NewJupiterClient(base string) *JupiterClient {
	return &JupiterClient{
		Base: base,
		Http: &http.Client{Timeout: 8 * time.Second},
	}
}

// amount is in smallest units (lamports for SOL; token decimals apply).
func (j *JupiterClient) GetQuote(ctx context.Context, inputMint, outputMint string, amount uint64, slippageBps int) (*Quote, error) {
	q := url.Values{}
	q.Set("inputMint", inputMint)
	q.Set("outputMint", outputMint)
	q.Set("amount", fmt.Sprintf("%d", amount))
	q.Set("slippageBps", fmt.Sprintf("%d", slippageBps))
	q.Set("onlyDirectRoutes", "false")
	u := j.Base + "/v6/quote?" + q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u, nil)
	resp, err := j.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("jupiter quote status %d", resp.StatusCode)
	}
	var out Quote
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuoteToken prices the standard WSOL buy for outputMint. A response
// without an output amount is treated as a failed quote.
func (j *JupiterClient) QuoteToken(ctx context.Context, outputMint string) (*Quote, error) {
	quote, err := j.GetQuote(ctx, WSOLMint, outputMint, QuoteLamports, QuoteSlippageBps)
	if err != nil {
		return nil, err
	}
	if quote.OutAmount == "" {
		return nil, fmt.Errorf("jupiter quote missing output amount for %s", outputMint)
	}
	return quote, nil
}
