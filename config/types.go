package config

// PeerConfig maps a counterpart domain to its identifier and endpoint
type PeerConfig struct {
	Domain      uint32 `yaml:"domain"`
	Counterpart string `yaml:"counterpart"`
	Endpoint    string `yaml:"endpoint"`
}

// GenesisConfig holds the configuration from genesis.yml
type GenesisConfig struct {
	TokenName   string       `yaml:"token_name"`
	TokenSymbol string       `yaml:"token_symbol"`
	Delegate    string       `yaml:"delegate"`
	MaxSupply   string       `yaml:"max_supply"`
	LocalDomain uint32       `yaml:"local_domain"`
	Peers       []PeerConfig `yaml:"peers"`
}

// ConfigFile is the top-level structure for genesis.yml
type ConfigFile struct {
	Config GenesisConfig `yaml:"config"`
}

// NodeConfig holds runtime tuning from the .ini file
type NodeConfig struct {
	GRPCAddr    string `ini:"grpc_addr"`
	JSONRPCAddr string `ini:"jsonrpc_addr"`
	MetricsAddr string `ini:"metrics_addr"`
	DBBackend   string `ini:"db_backend"`
	DBPath      string `ini:"db_path"`
}

// TransportConfig holds the relayer settings for the gRPC transport
type TransportConfig struct {
	RelayerKeyPath string `ini:"relayer_key_path"`
	FlatFee        string `ini:"flat_fee"`
}

// AuditConfig holds the optional postgres journal settings
type AuditConfig struct {
	DatabaseURL string `ini:"database_url"`
}
