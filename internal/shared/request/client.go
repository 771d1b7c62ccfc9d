package request

import "strings"

type ClientType string

const (
	ClientWeb    ClientType = "web"
	ClientMobile ClientType = "mobile"
)

var mobileAgentMarkers = []string{"okhttp", "dart", "cfnetwork", "expo", "android", "iphone"}

// ResolveClientType prefers the explicit X-Client-Type header and falls back to sniffing the User-Agent.
func ResolveClientType(clientHeader, userAgent string) ClientType {
	switch strings.ToLower(strings.TrimSpace(clientHeader)) {
	case string(ClientWeb):
		return ClientWeb
	case string(ClientMobile):
		return ClientMobile
	}

	ua := strings.ToLower(userAgent)
	for _, marker := range mobileAgentMarkers {
		if strings.Contains(ua, marker) {
			return ClientMobile
		}
	}
	return ClientWeb
}

// IsWebClient reports whether tokens travel in cookies.
func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
