package pipeline

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseImageBaseURL parses an absolute http(s) URL used to resolve relative
// image sources. A trailing slash is added so the last path segment is kept.
func ParseImageBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q must use http or https", ErrInvalidImageBaseURL, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidImageBaseURL, raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// RewriteImageSources resolves relative img src values in an HTML fragment
// against base. If base is nil, returns the fragment unchanged.
//
// The fragment is tokenized rather than parsed into a tree: the HTML parser
// would move the image container out of its enclosing paragraph. Only img
// tags are re-serialized; every other token is copied byte for byte.
//
// Does NOT rewrite:
//   - absolute URLs, protocol-relative URLs and data: URIs
//   - fragment-only references (#anchor)
//   - srcset attributes
func RewriteImageSources(fragment string, base *url.URL) (string, error) {
	if base == nil || !strings.Contains(fragment, "<img") {
		return fragment, nil
	}

	var b strings.Builder
	b.Grow(len(fragment) + 64)

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return "", z.Err()
		}

		raw := string(z.Raw())
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			b.WriteString(raw)
			continue
		}

		tok := z.Token()
		if tok.DataAtom != atom.Img || !rewriteSrc(&tok, base) {
			b.WriteString(raw)
			continue
		}
		b.WriteString(tok.String())
	}
}

// rewriteSrc resolves the token's src attribute. Reports whether it changed.
func rewriteSrc(tok *html.Token, base *url.URL) bool {
	for i, attr := range tok.Attr {
		if attr.Key != "src" || !isRelativeRef(attr.Val) {
			continue
		}
		ref, err := url.Parse(attr.Val)
		if err != nil {
			return false
		}
		tok.Attr[i].Val = base.ResolveReference(ref).String()
		return true
	}
	return false
}

// isRelativeRef returns true if the reference should be resolved.
func isRelativeRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return !u.IsAbs() && u.Host == ""
}
