package services

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// PageCursor is the sort key of the last row of a page under the
// (created_at DESC, id DESC) total order. Timestamps carry millisecond
// precision; the id breaks ties between rows sharing a timestamp.
type PageCursor struct {
	CreatedAt time.Time
	ID        int64
}

// EncodeCursor serializes a cursor as base64url("<epoch-millis>:<id>")
// without padding, safe to embed in a URL query parameter. A nil cursor
// (no next page) encodes to nil.
func EncodeCursor(c *PageCursor) *string {
	if c == nil {
		return nil
	}
	raw := strconv.FormatInt(c.CreatedAt.UnixMilli(), 10) + ":" + strconv.FormatInt(c.ID, 10)
	token := base64.RawURLEncoding.EncodeToString([]byte(raw))
	return &token
}

// DecodeCursor restores a cursor from a client-supplied token. It is total
// over arbitrary input: any malformed token (bad encoding, wrong field
// count, non-numeric fields) decodes to nil, which callers treat as "start
// from the most recent record". Corrupt cursors must never fail a request.
func DecodeCursor(token *string) *PageCursor {
	if token == nil || *token == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(*token)
	if err != nil {
		return nil
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 2 {
		return nil
	}
	millis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil
	}
	return &PageCursor{
		CreatedAt: time.UnixMilli(millis).UTC(),
		ID:        id,
	}
}
