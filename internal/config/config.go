package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// TransportHTTP serves the MCP endpoint over streamable HTTP.
// TransportStdio serves it over stdin/stdout so a client under test can
// spawn the fixture as a subprocess.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

func Init(root *cobra.Command) {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyHost, "127.0.0.1")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyTransport, TransportHTTP)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyMaxPayloadBytes, 1<<20)
	viper.SetDefault(KeyMaxPayloadDepth, 64)
	viper.SetDefault(KeyProbeURL, "http://127.0.0.1:8000/mcp/jsonrpc")
}

func Host() string         { return viper.GetString(KeyHost) }
func Port() int            { return viper.GetInt(KeyPort) }
func Transport() string    { return viper.GetString(KeyTransport) }
func LogLevel() string     { return viper.GetString(KeyLogLevel) }
func MaxPayloadBytes() int { return viper.GetInt(KeyMaxPayloadBytes) }
func MaxPayloadDepth() int { return viper.GetInt(KeyMaxPayloadDepth) }
func ProbeURL() string     { return viper.GetString(KeyProbeURL) }
func ScenarioFile() string { return viper.GetString(KeyScenarioFile) }
