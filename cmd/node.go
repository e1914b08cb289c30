package cmd

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"omni/audit"
	"omni/bridge"
	"omni/config"
	"omni/db"
	"omni/events"
	"omni/exception"
	"omni/jsonrpc"
	"omni/logx"
	"omni/monitoring"
	"omni/network"
	"omni/token"
	"omni/utils"
)

var (
	genesisPath string
	configPath  string
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Run a domain node",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNode()
	},
}

func init() {
	nodeCmd.Flags().StringVar(&genesisPath, "genesis", "genesis.yml", "path to genesis.yml")
	nodeCmd.Flags().StringVar(&configPath, "config", "omni.ini", "path to omni.ini")
	rootCmd.AddCommand(nodeCmd)
}

func openProvider(nodeCfg *config.NodeConfig) (db.DatabaseProvider, error) {
	backend := nodeCfg.DBBackend
	if backend == "" {
		backend = config.DefaultDBBackend
	}
	path := nodeCfg.DBPath
	if path == "" {
		path = config.DefaultDBPath
	}
	switch backend {
	case "bolt":
		return db.NewBoltProvider(path)
	case "leveldb":
		return db.NewLevelDBProvider(path)
	case "memory":
		return db.NewMemoryProvider(), nil
	}
	return nil, fmt.Errorf("unknown db backend %q", backend)
}

func runNode() error {
	monitoring.InitMetrics()

	genesisCfg, err := config.LoadGenesisConfig(genesisPath)
	if err != nil {
		return fmt.Errorf("failed to load genesis config: %w", err)
	}
	nodeCfg, err := config.LoadNodeConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load node config: %w", err)
	}
	transportCfg, err := config.LoadTransportConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load transport config: %w", err)
	}
	auditCfg, err := config.LoadAuditConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load audit config: %w", err)
	}

	provider, err := openProvider(nodeCfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer provider.Close()

	eventBus := events.NewEventBus()
	eventRouter := events.NewEventRouter(eventBus)

	// transport towards every configured peer endpoint
	var transport bridge.Transport
	var relayerKey ed25519.PrivateKey
	flatFee := utils.Uint256FromString(transportCfg.FlatFee)
	if transportCfg.RelayerKeyPath != "" {
		relayerKey, err = config.LoadEd25519PrivKey(transportCfg.RelayerKeyPath)
		if err != nil {
			return fmt.Errorf("failed to load relayer key: %w", err)
		}
		endpoints := make(map[uint32]string, len(genesisCfg.Peers))
		for _, peer := range genesisCfg.Peers {
			endpoints[peer.Domain] = peer.Endpoint
		}
		transport = network.NewGRPCTransport(endpoints, relayerKey, flatFee)
	}

	tok, err := token.BuildDomain(genesisCfg.LocalDomain, provider, transport, eventRouter)
	if err != nil {
		return fmt.Errorf("failed to build domain: %w", err)
	}

	if err := bootstrapGenesis(tok, genesisCfg); err != nil {
		return err
	}

	// optional postgres supply journal
	if auditCfg.DatabaseURL != "" {
		auditDB, err := audit.ConnectDatabase(auditCfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect audit database: %w", err)
		}
		defer auditDB.Close()
		journal, err := audit.NewJournal(auditDB, genesisCfg.LocalDomain, eventRouter)
		if err != nil {
			return fmt.Errorf("failed to build audit journal: %w", err)
		}
		journal.Start()
		defer journal.Stop()
	}

	// messaging server: the receive side of the transport
	var relayerPubKeys []string
	if relayerKey != nil {
		relayerPubKeys = append(relayerPubKeys, hex.EncodeToString(relayerKey.Public().(ed25519.PublicKey)))
	}
	grpcAddr := nodeCfg.GRPCAddr
	if grpcAddr == "" {
		grpcAddr = config.DefaultGRPCAddr
	}
	grpcSrv := network.NewGRPCServer(tok, flatFee, relayerPubKeys)
	if err := network.Serve(grpcSrv, grpcAddr); err != nil {
		return err
	}
	defer grpcSrv.GracefulStop()

	// read-only JSON-RPC surface
	jsonrpcAddr := nodeCfg.JSONRPCAddr
	if jsonrpcAddr == "" {
		jsonrpcAddr = config.DefaultJSONRPCAddr
	}
	jsonrpc.NewServer(jsonrpcAddr, tok).Start()

	// prometheus endpoint
	metricsAddr := nodeCfg.MetricsAddr
	if metricsAddr == "" {
		metricsAddr = config.DefaultMetricsAddr
	}
	metricsMux := http.NewServeMux()
	monitoring.RegisterMetrics(metricsMux)
	exception.SafeGo("MetricsServe", func() {
		if err := http.ListenAndServe(metricsAddr, metricsMux); err != nil {
			logx.Error("MONITORING", "Metrics server stopped: ", err)
		}
	})

	logx.Info("NODE", fmt.Sprintf("Domain %d running", genesisCfg.LocalDomain))
	select {}
}

// bootstrapGenesis runs one-time initialization on a fresh database and
// syncs the peer table from genesis config
func bootstrapGenesis(tok *token.Token, genesisCfg *config.GenesisConfig) error {
	owner, err := tok.Owner()
	if err != nil {
		return err
	}
	if owner == "" {
		maxSupply, err := uint256.FromDecimal(genesisCfg.MaxSupply)
		if err != nil {
			return fmt.Errorf("invalid max_supply in genesis: %w", err)
		}
		if err := tok.Initialize(genesisCfg.TokenName, genesisCfg.TokenSymbol, genesisCfg.Delegate, maxSupply); err != nil {
			return fmt.Errorf("failed to initialize domain: %w", err)
		}
		owner = genesisCfg.Delegate
	}

	for _, peer := range genesisCfg.Peers {
		if err := tok.SetPeer(owner, peer.Domain, peer.Counterpart); err != nil {
			return fmt.Errorf("failed to configure peer %d: %w", peer.Domain, err)
		}
	}
	return nil
}
