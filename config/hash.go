package config

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns the hex BLAKE3 digest of the config's canonical JSON
// encoding. Because the encoding is canonical, equal configs always hash
// identically; the king puts this value in king:config_update payloads and
// agents compare it against their loaded snapshot to detect drift.
func (c GatewayConfig) Hash() (string, error) {
	data, err := c.EncodeJSON()
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
