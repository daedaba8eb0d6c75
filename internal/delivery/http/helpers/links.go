package helpers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Links builds absolute hypermedia URIs for one request against a resource
// collection such as /speakers.
type Links struct {
	origin       url.URL
	collection   string
	absolutePath url.URL
}

// NewLinks derives the origin from the request, honouring X-Forwarded-Proto
// and X-Forwarded-Host set by a reverse proxy.
func NewLinks(r *http.Request, collectionPath string) *Links {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := firstHeaderValue(r, "X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	host := r.Host
	if h := firstHeaderValue(r, "X-Forwarded-Host"); h != "" {
		host = h
	}
	origin := url.URL{Scheme: scheme, Host: host}
	abs := origin
	abs.Path = r.URL.Path
	return &Links{
		origin:       origin,
		collection:   "/" + strings.Trim(collectionPath, "/"),
		absolutePath: abs,
	}
}

// Collection returns the URI of the resource collection.
func (l *Links) Collection() string {
	u := l.origin
	u.Path = l.collection
	return u.String()
}

// Self returns the URI of the member with the given id.
func (l *Links) Self(id string) string {
	u := l.origin
	u.Path = l.collection + "/" + id
	u.RawPath = l.collection + "/" + url.PathEscape(id)
	return u.String()
}

// Page returns the collection URI for the given page number.
func (l *Links) Page(n int) string {
	u := l.origin
	u.Path = l.collection
	u.RawQuery = url.Values{"page": []string{strconv.Itoa(n)}}.Encode()
	return u.String()
}

// AbsolutePath returns the absolute URI of the current request without its query.
func (l *Links) AbsolutePath() string {
	return l.absolutePath.String()
}

// Resolve resolves ref against the current request's absolute path
// (RFC 3986 reference resolution). Unparseable references are returned unchanged.
func (l *Links) Resolve(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return l.absolutePath.ResolveReference(u).String()
}

func firstHeaderValue(r *http.Request, name string) string {
	v := r.Header.Get(name)
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
