// Package contenturi turns the content pointers found in token and contract metadata
// (ipfs://, ar://, bare CIDs, data: and http(s) URLs) into fetchable URLs.
package contenturi

import (
	"strings"

	"github.com/ipfs/go-cid"
)

type Scheme string

const (
	SchemeIpfs    Scheme = "ipfs"
	SchemeCid     Scheme = "cid"
	SchemeHttp    Scheme = "http"
	SchemeHttps   Scheme = "https"
	SchemeData    Scheme = "data"
	SchemeAr      Scheme = "ar"
	SchemeUnknown Scheme = "unknown"
)

const (
	IpfsPrefix  = "ipfs://"
	ArPrefix    = "ar://"
	DataPrefix  = "data:"
	HttpPrefix  = "http://"
	HttpsPrefix = "https://"

	DefaultIpfsGateway    = "https://ipfs.io/ipfs/"
	DefaultArweaveGateway = "https://arweave.net/"
)

// Gateways are the base URLs content-addressed pointers are rewritten onto.
// Both must end with "/", see GatewayBase.
type Gateways struct {
	Ipfs    string
	Arweave string
}

func DefaultGateways() Gateways {
	return Gateways{
		Ipfs:    DefaultIpfsGateway,
		Arweave: DefaultArweaveGateway,
	}
}

// SchemeOf classifies pointer. Prefixes are matched literally.
func SchemeOf(pointer string) Scheme {
	switch {
	case strings.HasPrefix(pointer, IpfsPrefix):
		return SchemeIpfs
	case strings.HasPrefix(pointer, ArPrefix):
		return SchemeAr
	case strings.HasPrefix(pointer, DataPrefix):
		return SchemeData
	case strings.HasPrefix(pointer, HttpsPrefix):
		return SchemeHttps
	case strings.HasPrefix(pointer, HttpPrefix):
		return SchemeHttp
	case IsCid(pointer):
		return SchemeCid
	}
	return SchemeUnknown
}

// IsCid reports whether the first path segment of pointer is a valid CID (v0 or v1).
func IsCid(pointer string) bool {
	root := pointer
	if i := strings.IndexByte(root, '/'); i >= 0 {
		root = root[:i]
	}
	if root == "" {
		return false
	}
	_, err := cid.Decode(root)
	return err == nil
}

// IpfsPath returns "<cid>[/<path>]" for ipfs:// and bare CID pointers.
func IpfsPath(pointer string) (string, bool) {
	switch SchemeOf(pointer) {
	case SchemeIpfs:
		return strings.TrimPrefix(pointer, IpfsPrefix), true
	case SchemeCid:
		return pointer, true
	}
	return "", false
}

// Normalize rewrites ipfs:// and bare CID pointers onto gateway. Any other pointer is
// returned unchanged, so normalizing an already normalized URL is a no-op.
func Normalize(pointer, gateway string) string {
	if p, ok := IpfsPath(pointer); ok {
		return gateway + p
	}
	return pointer
}

// NormalizeWith is Normalize extended with ar:// pointers.
func NormalizeWith(pointer string, gws Gateways) string {
	if strings.HasPrefix(pointer, ArPrefix) {
		return gws.Arweave + strings.TrimPrefix(pointer, ArPrefix)
	}
	return Normalize(pointer, gws.Ipfs)
}

// GatewayBase trims raw and makes sure it ends with exactly one "/".
func GatewayBase(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	return strings.TrimRight(raw, "/") + "/"
}
