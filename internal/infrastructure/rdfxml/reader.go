package rdfxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/knakk/rdf"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
)

// ErrNoContent is returned for documents that yield no triples.
var ErrNoContent = errors.New("no RDF/XML content")

// ReadFile parses the RDF/XML document at path.
func ReadFile(path string) (*entities.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return g, nil
}

// Read parses an RDF/XML document into a graph. IRIs the decoder leaves
// relative are resolved against the root element's xml:base.
func Read(r io.Reader) (*entities.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	base, err := documentBase(data)
	if err != nil {
		return nil, err
	}

	g := entities.NewGraph()
	dec := rdf.NewTripleDecoder(bytes.NewReader(data), rdf.RDFXML)
	for {
		triple, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		g.Add(entities.Triple{
			Subject:   toTerm(triple.Subj, base),
			Predicate: resolve(base, triple.Pred.String()),
			Object:    toTerm(triple.Obj, base),
		})
	}

	if g.Len() == 0 {
		return nil, ErrNoContent
	}
	return g, nil
}

// documentBase returns the xml:base of the root element. Documents without
// a root element yield ErrNoContent.
func documentBase(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", ErrNoContent
		}
		if err != nil {
			return "", err
		}
		if start, ok := tok.(xml.StartElement); ok {
			for _, a := range start.Attr {
				if a.Name.Space == XMLNamespace && a.Name.Local == "base" {
					return a.Value, nil
				}
			}
			return "", nil
		}
	}
}

func toTerm(t rdf.Term, base string) entities.Term {
	switch t.Type() {
	case rdf.TermBlank:
		return entities.Blank(strings.TrimPrefix(t.String(), "_:"))
	case rdf.TermLiteral:
		lit, ok := t.(rdf.Literal)
		if !ok {
			return entities.LiteralTerm(t.String(), "", "")
		}
		if lang := lit.Lang(); lang != "" {
			return entities.LiteralTerm(lit.String(), "", lang)
		}
		return entities.LiteralTerm(lit.String(), lit.DataType.String(), "")
	default:
		return entities.IRI(resolve(base, t.String()))
	}
}

// resolve resolves an IRI reference against base. Absolute IRIs are
// returned unchanged.
func resolve(base, ref string) string {
	r, err := url.Parse(ref)
	if err != nil || r.IsAbs() || base == "" {
		return ref
	}

	trimmed := base
	if idx := strings.Index(trimmed, "#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	switch {
	case ref == "":
		return trimmed
	case strings.HasPrefix(ref, "#"):
		return trimmed + ref
	}

	b, err := url.Parse(trimmed)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
