package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"omni/logx"
)

// LoadGenesisConfig reads and parses the genesis.yml file
func LoadGenesisConfig(path string) (*GenesisConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		logx.Error("CONFIG", fmt.Sprintf("Failed to open genesis file: %v", err))
		return nil, err
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		logx.Error("CONFIG", fmt.Sprintf("Failed to decode genesis YAML: %v", err))
		return nil, err
	}
	logx.Info("CONFIG", fmt.Sprintf("Loaded genesis: token=%s (%s), domain=%d, peers=%d", cfgFile.Config.TokenName, cfgFile.Config.TokenSymbol, cfgFile.Config.LocalDomain, len(cfgFile.Config.Peers)))
	return &cfgFile.Config, nil
}

// LoadNodeConfig reads node runtime config from an .ini file
func LoadNodeConfig(path string) (*NodeConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	nodeSection := cfg.Section("node")
	nodeCfg := &NodeConfig{}
	err = nodeSection.MapTo(nodeCfg)
	if err != nil {
		return nil, err
	}
	return nodeCfg, nil
}

// LoadTransportConfig reads relayer/transport config from an .ini file
func LoadTransportConfig(path string) (*TransportConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	transportSection := cfg.Section("transport")
	transportCfg := &TransportConfig{}
	err = transportSection.MapTo(transportCfg)
	if err != nil {
		return nil, err
	}
	return transportCfg, nil
}

// LoadAuditConfig reads the optional audit journal config from an .ini file
func LoadAuditConfig(path string) (*AuditConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	auditSection := cfg.Section("audit")
	auditCfg := &AuditConfig{}
	err = auditSection.MapTo(auditCfg)
	if err != nil {
		return nil, err
	}
	return auditCfg, nil
}

// LoadEd25519PrivKey loads an Ed25519 private key from a file (expects hex encoding)
func LoadEd25519PrivKey(path string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(string(data))
	if err != nil {
		return nil, err
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid ed25519 private key length: %d", len(key))
	}
	return ed25519.PrivateKey(key), nil
}
