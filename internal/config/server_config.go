package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EchoServer holds the echo framework related configuration.
type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
}

// LoggerServer holds the logger related configuration.
type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

// PayoutServer holds everything the transfer pipeline needs:
// signer key material, the ordered RPC candidate list and the
// amount policy knobs (gas reserve, fallback amount, fiat rate).
type PayoutServer struct {
	SignerPrivateKey  string `json:"-"` // never log or serialize key material
	SignerMnemonic    string `json:"-"`
	RPCEndpoints      []string
	RPCProbeTimeout   time.Duration
	ChainID           int64
	DefaultTreasury   string
	GasReserveETH     float64
	FallbackAmountETH float64
	ETHUSDRate        float64
}

// ManagementServer holds the config for the /-/* management endpoints.
type ManagementServer struct {
	Secret string `json:"-"`
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Payout     PayoutServer
	Management ManagementServer
}

var (
	configOnce sync.Once
	config     Server
)

// DefaultServiceConfigFromEnv returns the server config as parsed from the
// environment. The config is only read once and cached for the process
// lifetime.
func DefaultServiceConfigFromEnv() Server {
	configOnce.Do(func() {
		config = defaultServiceConfigFromEnv()
	})

	return config
}

func defaultServiceConfigFromEnv() Server {
	v := viper.New()
	v.SetEnvPrefix("PAYOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVER_LISTEN_ADDRESS", ":8087")
	v.SetDefault("SERVER_DEBUG", false)
	v.SetDefault("SERVER_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true)
	v.SetDefault("SERVER_ENABLE_CORS_MIDDLEWARE", true)
	v.SetDefault("SERVER_ENABLE_LOGGER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ENABLE_REQUEST_ID_MIDDLEWARE", true)

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_REQUEST_LEVEL", "debug")
	v.SetDefault("LOGGER_LOG_REQUEST_BODY", false)
	v.SetDefault("LOGGER_LOG_RESPONSE_BODY", false)
	v.SetDefault("LOGGER_PRETTY_PRINT_CONSOLE", false)

	v.SetDefault("SIGNER_PRIVATE_KEY", "")
	v.SetDefault("SIGNER_MNEMONIC", "")
	v.SetDefault("RPC_ENDPOINTS", "https://eth.llamarpc.com,https://rpc.ankr.com/eth,https://ethereum.publicnode.com")
	v.SetDefault("RPC_PROBE_TIMEOUT", 5*time.Second)
	v.SetDefault("CHAIN_ID", 1)
	v.SetDefault("DEFAULT_TREASURY", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e")
	v.SetDefault("GAS_RESERVE_ETH", 0.002)
	v.SetDefault("FALLBACK_AMOUNT_ETH", 0.005)
	v.SetDefault("ETH_USD_RATE", 3000.0)

	v.SetDefault("MGMT_SECRET", "mgmtpass")

	return Server{
		Echo: EchoServer{
			Debug:                          v.GetBool("SERVER_DEBUG"),
			ListenAddress:                  v.GetString("SERVER_LISTEN_ADDRESS"),
			HideInternalServerErrorDetails: v.GetBool("SERVER_HIDE_INTERNAL_SERVER_ERROR_DETAILS"),
			EnableCORSMiddleware:           v.GetBool("SERVER_ENABLE_CORS_MIDDLEWARE"),
			EnableLoggerMiddleware:         v.GetBool("SERVER_ENABLE_LOGGER_MIDDLEWARE"),
			EnableRecoverMiddleware:        v.GetBool("SERVER_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware:      v.GetBool("SERVER_ENABLE_REQUEST_ID_MIDDLEWARE"),
		},
		Logger: LoggerServer{
			Level:              parseLogLevel(v.GetString("LOGGER_LEVEL")),
			RequestLevel:       parseLogLevel(v.GetString("LOGGER_REQUEST_LEVEL")),
			LogRequestBody:     v.GetBool("LOGGER_LOG_REQUEST_BODY"),
			LogResponseBody:    v.GetBool("LOGGER_LOG_RESPONSE_BODY"),
			PrettyPrintConsole: v.GetBool("LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Payout: PayoutServer{
			SignerPrivateKey:  v.GetString("SIGNER_PRIVATE_KEY"),
			SignerMnemonic:    v.GetString("SIGNER_MNEMONIC"),
			RPCEndpoints:      parseRPCEndpoints(v.GetString("RPC_ENDPOINTS")),
			RPCProbeTimeout:   v.GetDuration("RPC_PROBE_TIMEOUT"),
			ChainID:           v.GetInt64("CHAIN_ID"),
			DefaultTreasury:   v.GetString("DEFAULT_TREASURY"),
			GasReserveETH:     v.GetFloat64("GAS_RESERVE_ETH"),
			FallbackAmountETH: v.GetFloat64("FALLBACK_AMOUNT_ETH"),
			ETHUSDRate:        v.GetFloat64("ETH_USD_RATE"),
		},
		Management: ManagementServer{
			Secret: v.GetString("MGMT_SECRET"),
		},
	}
}

// PrintServiceEnv dumps the resolved config as indented JSON to stdout.
// Key material and the mgmt secret are tagged `json:"-"` and stay hidden.
func PrintServiceEnv() {
	cfg := DefaultServiceConfigFromEnv()

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal service config")
	}

	fmt.Println(string(b))
}

// parseRPCEndpoints splits the comma separated candidate list, preserving
// order. List order is the failover priority.
func parseRPCEndpoints(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	endpoints := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			endpoints = append(endpoints, part)
		}
	}

	return endpoints
}

func parseLogLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
