package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultOpenAPISpec     = "api/openapi.yaml"
	defaultShutdownTimeout = 10 * time.Second
	defaultSlippageBps     = int64(100)
	defaultTokenCacheTTL   = time.Hour
	defaultAppCode         = "signforge"
)

const (
	tokenMapURLEnv          = "TOKEN_MAP_URL"
	tokenMapURLSecondaryEnv = "TOKEN_MAP_URL_2"
	rpcURLsEnv              = "RPC_URLS_JSON"
	orderBookURLsEnv        = "ORDERBOOK_URLS_JSON"
	partnerFeeBpsEnv        = "PARTNER_FEE_BPS"
	partnerFeeRecipientEnv  = "PARTNER_FEE_RECIPIENT"
)

type ConfigError struct {
	Code     string
	Message  string
	Metadata map[string]string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

type Config struct {
	Port            string
	OpenAPISpecPath string
	ShutdownTimeout time.Duration

	TokenMapURLs  []string
	TokenCacheTTL time.Duration

	// Per-chain endpoint overrides; registry defaults apply when absent.
	RPCURLs       map[int64]string
	OrderBookURLs map[int64]string

	SlippageBps         int64
	AppCode             string
	ReferralAddress     string
	PartnerFeeBps       int64
	PartnerFeeRecipient string

	StakingRate string
}

func LoadConfig() (Config, *ConfigError) {
	tokenMapURL := strings.TrimSpace(os.Getenv(tokenMapURLEnv))
	if tokenMapURL == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_TOKEN_MAP_URL_REQUIRED",
			Message: tokenMapURLEnv + " is required",
		}
	}
	tokenMapURLs := []string{tokenMapURL}
	if secondary := strings.TrimSpace(os.Getenv(tokenMapURLSecondaryEnv)); secondary != "" {
		tokenMapURLs = append(tokenMapURLs, secondary)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	openAPISpecPath := os.Getenv("OPENAPI_SPEC_PATH")
	if openAPISpecPath == "" {
		openAPISpecPath = defaultOpenAPISpec
	}

	slippageBps := defaultSlippageBps
	if raw := strings.TrimSpace(os.Getenv("SLIPPAGE_BPS")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 || parsed > 10000 {
			return Config{}, &ConfigError{
				Code:    "CONFIG_SLIPPAGE_BPS_INVALID",
				Message: "SLIPPAGE_BPS must be an integer between 0 and 10000",
			}
		}
		slippageBps = parsed
	}

	tokenCacheTTL := defaultTokenCacheTTL
	if raw := strings.TrimSpace(os.Getenv("TOKEN_CACHE_TTL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return Config{}, &ConfigError{
				Code:    "CONFIG_TOKEN_CACHE_TTL_INVALID",
				Message: "TOKEN_CACHE_TTL must be a positive duration",
			}
		}
		tokenCacheTTL = parsed
	}

	rpcURLs, rpcErr := parseChainURLMap(rpcURLsEnv)
	if rpcErr != nil {
		return Config{}, rpcErr
	}
	orderBookURLs, orderBookErr := parseChainURLMap(orderBookURLsEnv)
	if orderBookErr != nil {
		return Config{}, orderBookErr
	}

	appCode := strings.TrimSpace(os.Getenv("APP_CODE"))
	if appCode == "" {
		appCode = defaultAppCode
	}

	partnerFeeBps := int64(0)
	partnerFeeRecipient := strings.TrimSpace(os.Getenv(partnerFeeRecipientEnv))
	if raw := strings.TrimSpace(os.Getenv(partnerFeeBpsEnv)); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 || parsed > 10000 {
			return Config{}, &ConfigError{
				Code:    "CONFIG_PARTNER_FEE_BPS_INVALID",
				Message: partnerFeeBpsEnv + " must be an integer between 0 and 10000",
			}
		}
		partnerFeeBps = parsed
	}
	if partnerFeeBps > 0 && partnerFeeRecipient == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_PARTNER_FEE_RECIPIENT_REQUIRED",
			Message: partnerFeeRecipientEnv + " is required when " + partnerFeeBpsEnv + " is set",
		}
	}

	return Config{
		Port:                port,
		OpenAPISpecPath:     openAPISpecPath,
		ShutdownTimeout:     defaultShutdownTimeout,
		TokenMapURLs:        tokenMapURLs,
		TokenCacheTTL:       tokenCacheTTL,
		RPCURLs:             rpcURLs,
		OrderBookURLs:       orderBookURLs,
		SlippageBps:         slippageBps,
		AppCode:             appCode,
		ReferralAddress:     strings.TrimSpace(os.Getenv("REFERRAL_ADDRESS")),
		PartnerFeeBps:       partnerFeeBps,
		PartnerFeeRecipient: partnerFeeRecipient,
		StakingRate:         strings.TrimSpace(os.Getenv("STAKING_RATE")),
	}, nil
}

func (c Config) Address() string {
	return ":" + c.Port
}

// parseChainURLMap reads a {"<chainId>": "<url>"} JSON object from env.
func parseChainURLMap(envName string) (map[int64]string, *ConfigError) {
	raw := strings.TrimSpace(os.Getenv(envName))
	if raw == "" {
		return map[int64]string{}, nil
	}

	decoded := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &ConfigError{
			Code:    "CONFIG_" + envName + "_INVALID",
			Message: envName + " must be a JSON object of chain id to url",
		}
	}

	urls := make(map[int64]string, len(decoded))
	for rawChainID, url := range decoded {
		chainID, err := strconv.ParseInt(strings.TrimSpace(rawChainID), 10, 64)
		if err != nil {
			return nil, &ConfigError{
				Code:     "CONFIG_" + envName + "_INVALID",
				Message:  envName + " keys must be integer chain ids",
				Metadata: map[string]string{"key": rawChainID},
			}
		}
		trimmed := strings.TrimSpace(url)
		if trimmed == "" {
			continue
		}
		urls[chainID] = trimmed
	}

	return urls, nil
}
