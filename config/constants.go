package config

const (
	DefaultGRPCAddr    = ":9090"
	DefaultJSONRPCAddr = ":8080"
	DefaultMetricsAddr = ":2112"

	DefaultDBBackend = "bolt"
	DefaultDBPath    = "./data/omni.db"
)
