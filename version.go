package assetkit

// Version is the library version, also embedded in the default user agent.
const Version = "0.3.0"

const (
	productName            = "AssetKit"
	defaultProtocolVersion = "1.0"
)

// DefaultUserAgent returns the user agent a fresh ClientConfig carries:
// the product name and the full version, joined with a dash.
func DefaultUserAgent() string {
	return productName + "-" + Version
}
