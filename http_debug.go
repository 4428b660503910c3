package workshop

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request and response for troubleshooting API
// communication. The dumps include query parameters (and therefore the
// API key), so keep it out of production environments.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging should be
// enabled at construction time. STEAM_WORKSHOP_DEBUG targets this client;
// DEBUG is honored for broader application debugging.
func debugLoggingRequested() bool {
	return os.Getenv("STEAM_WORKSHOP_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
