package storage

import (
	"encoding/base64"
	"strings"
)

// DataFile is a decoded data-URI payload.
type DataFile struct {
	MIME  string
	Bytes []byte
}

// ParseDataURI decodes a data:<mime>;base64,<payload> string. Anything not
// matching that shape returns nil rather than an error; callers treat nil as
// "no file".
func ParseDataURI(s string) *DataFile {
	if !strings.HasPrefix(s, "data:") {
		return nil
	}

	rest := s[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil
	}

	mime := rest[:sep]
	if mime == "" || !strings.Contains(mime, "/") {
		return nil
	}

	payload := rest[sep+len(";base64,"):]
	if payload == "" {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}

	return &DataFile{MIME: mime, Bytes: raw}
}

// Ext maps the MIME type to a file extension for the storage key.
func (f *DataFile) Ext() string {
	switch f.MIME {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	case "application/pdf":
		return "pdf"
	default:
		if i := strings.LastIndex(f.MIME, "/"); i >= 0 && i < len(f.MIME)-1 {
			return f.MIME[i+1:]
		}
		return "bin"
	}
}
