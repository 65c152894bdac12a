package config

const (
	KeyHost            = "host"
	KeyPort            = "port"
	KeyTransport       = "transport"
	KeyLogLevel        = "log-level"
	KeyMaxPayloadBytes = "max-payload-bytes"
	KeyMaxPayloadDepth = "max-payload-depth"
	KeyProbeURL        = "probe-url"
	KeyScenarioFile    = "scenario-file"
)
