package config

// Dex defines the chain endpoints used for quote retrieval and wallet
// diagnostics. SOLANA_RPC_URL and JUPITER_BASE_URL override the YAML values.
type Dex struct {
	Chain       string `yaml:"chain"` // informational, always "solana" today
	RpcURL      string `yaml:"rpc_url"`
	Commitment  string `yaml:"commitment"`   // processed|confirmed|finalized
	JupiterBase string `yaml:"jupiter_base"` // https://quote-api.jup.ag
}

// Wallet is the YAML fallback for signing material; the
// SOLANA_PRIVATE_KEY_BASE58 environment variable takes precedence.
type Wallet struct {
	PrivateKeyBase58 string `yaml:"private_key_base58"`
}
