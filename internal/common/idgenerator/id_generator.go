// Package idgenerator generates unique ids composed of an optional prefix, a
// millisecond timestamp, and a base64-encoded UUID.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate combines the joined prefixes, the current epoch millis and a
// URL-safe base64 UUID. Without a prefix the id starts at the timestamp.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := time.Now().UnixMilli()
	id := uuid.New()
	encodedUUID := base64.RawURLEncoding.EncodeToString(id[:])
	generatedID := fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)

	if prefix == "" {
		generatedID = fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}

	return generatedID
}
