package form

import "strings"

// SourceKind enumerates the loader modalities for definition documents.
type SourceKind string

const (
	// SourceKindFile loads from a local file path.
	SourceKindFile SourceKind = "file"
	// SourceKindURL loads over HTTP(S).
	SourceKindURL SourceKind = "url"
	// SourceKindBytes wraps an in-memory document.
	SourceKindBytes SourceKind = "bytes"
)

// Source identifies where a form definition document originated.
type Source interface {
	// Kind reports the loader modality.
	Kind() SourceKind
	// Location is the path or URL for file/URL sources, a caller-chosen name
	// for byte sources.
	Location() string
}

type fileSource struct{ path string }

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

type urlSource struct{ url string }

func (s urlSource) Kind() SourceKind { return SourceKindURL }
func (s urlSource) Location() string { return s.url }

type byteSource struct {
	name string
	data []byte
}

func (s byteSource) Kind() SourceKind { return SourceKindBytes }
func (s byteSource) Location() string { return s.name }

// SourceFromFile returns a Source pointing at a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: path}
}

// SourceFromURL returns a Source pointing at an HTTP(S) URL.
func SourceFromURL(url string) Source {
	return urlSource{url: url}
}

// SourceFromBytes wraps an already-loaded document. The name is only used for
// format sniffing and error messages.
func SourceFromBytes(name string, data []byte) Source {
	return byteSource{name: name, data: data}
}

// ParseSource maps a raw string to a file or URL source.
func ParseSource(raw string) Source {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return SourceFromURL(trimmed)
	}
	return SourceFromFile(trimmed)
}
