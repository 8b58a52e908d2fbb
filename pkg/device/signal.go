package device

import "net/http"

// HeaderGetter is anything exposing header-shaped lookups, such as http.Header.
type HeaderGetter interface {
	Get(key string) string
}

// SourceKind discriminates the variants of Source.
type SourceKind uint8

const (
	// SourceNone means no explicit source; the ambient environment is used.
	SourceNone SourceKind = iota
	// SourceString is an explicit user-agent string.
	SourceString
	// SourceHeader is a header set carrying a User-Agent field.
	SourceHeader
)

// Source is where a caller wants the signal read from.
// The zero value is SourceNone.
type Source struct {
	kind   SourceKind
	value  string
	header HeaderGetter
}

// FromString returns an explicit string source.
func FromString(ua string) Source {
	return Source{kind: SourceString, value: ua}
}

// FromHeader returns a header source. A nil header set is treated as no source.
func FromHeader(h HeaderGetter) Source {
	if h == nil {
		return Source{}
	}
	if hh, ok := h.(http.Header); ok && hh == nil {
		return Source{}
	}
	return Source{kind: SourceHeader, header: h}
}

// FromRequest returns a header source for r. A nil request is treated as no source.
func FromRequest(r *http.Request) Source {
	if r == nil {
		return Source{}
	}
	return FromHeader(r.Header)
}

// Kind returns the variant of the source.
func (s Source) Kind() SourceKind { return s.kind }

// Signal is the resolved user-agent string, or its absence.
type Signal struct {
	value   string
	present bool
}

// Value returns the signal string, "" when absent.
func (s Signal) Value() string { return s.value }

// Present reports whether any signal was resolved.
func (s Signal) Present() bool { return s.present }

func (s Signal) String() string { return s.value }

// ResolveSignal picks the signal for one classification call. An explicit
// non-empty string wins, then the User-Agent field of a header source, then
// the ambient environment's user agent. Empty or missing values at any step
// fall through to the next one; nothing here fails.
func ResolveSignal(src Source, env *Environment) Signal {
	switch src.kind {
	case SourceString:
		if src.value != "" {
			return Signal{value: src.value, present: true}
		}
	case SourceHeader:
		if ua := src.header.Get("User-Agent"); ua != "" {
			return Signal{value: ua, present: true}
		}
	}

	if env != nil && env.UserAgent != "" {
		return Signal{value: env.UserAgent, present: true}
	}

	return Signal{}
}
