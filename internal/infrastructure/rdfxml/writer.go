// Package rdfxml serializes ontologies to RDF/XML and parses RDF/XML
// documents back into triple graphs.
package rdfxml

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ersonp/dota2-ontology/internal/domain/entities"
	"github.com/ersonp/dota2-ontology/internal/infrastructure/fileio"
)

// XMLNamespace is the namespace bound to the xml: prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Write serializes the ontology: header, properties, classes, disjointness
// axioms, then individuals in creation order.
func Write(w io.Writer, o *entities.Ontology) error {
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}
	ref := refFunc(o)

	ew.printf("<?xml version=\"1.0\"?>\n")
	ew.printf("<rdf:RDF xmlns:rdf=\"%s\"\n", entities.RDFNamespace)
	ew.printf("         xmlns:xsd=\"%s\"\n", entities.XSDNamespace)
	ew.printf("         xmlns:rdfs=\"%s\"\n", entities.RDFSNamespace)
	ew.printf("         xmlns:owl=\"%s\"\n", entities.OWLNamespace)
	ew.printf("         xml:base=\"%s\"\n", escape(o.IRI()))
	ew.printf("         xmlns=\"%s\">\n\n", escape(o.Namespace()))

	ew.printf("<owl:Ontology rdf:about=\"%s\"/>\n\n", escape(o.IRI()))

	for _, kind := range []entities.PropertyKind{entities.ObjectProperty, entities.DataProperty} {
		for _, p := range o.PropertyDefs() {
			if p.Kind == kind {
				writeProperty(ew, p, ref)
			}
		}
	}

	for _, c := range o.ClassDefs() {
		if c.Parent == "" {
			ew.printf("<owl:Class rdf:about=\"%s\"/>\n\n", ref(string(c.Name)))
			continue
		}
		ew.printf("<owl:Class rdf:about=\"%s\">\n", ref(string(c.Name)))
		ew.printf("  <rdfs:subClassOf rdf:resource=\"%s\"/>\n", ref(string(c.Parent)))
		ew.printf("</owl:Class>\n\n")
	}

	for _, group := range o.DisjointGroups() {
		ew.printf("<owl:AllDisjointClasses>\n")
		ew.printf("  <owl:members rdf:parseType=\"Collection\">\n")
		for _, c := range group {
			ew.printf("    <rdf:Description rdf:about=\"%s\"/>\n", ref(string(c)))
		}
		ew.printf("  </owl:members>\n")
		ew.printf("</owl:AllDisjointClasses>\n\n")
	}

	for _, ind := range o.Individuals() {
		writeIndividual(ew, ind, ref)
	}

	ew.printf("</rdf:RDF>\n")

	if ew.err != nil {
		return fmt.Errorf("writing RDF/XML: %w", ew.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing RDF/XML: %w", err)
	}
	return nil
}

// WriteFile serializes the ontology to path. The file is replaced only when
// the whole document was written.
func WriteFile(path string, o *entities.Ontology) error {
	return fileio.WriteAtomic(path, func(w io.Writer) error {
		return Write(w, o)
	})
}

func writeProperty(ew *errWriter, p entities.PropertyDef, ref func(string) string) {
	element := "owl:ObjectProperty"
	if p.Kind == entities.DataProperty {
		element = "owl:DatatypeProperty"
	}

	ew.printf("<%s rdf:about=\"%s\">\n", element, ref(p.Name))
	for _, d := range p.Domain {
		ew.printf("  <rdfs:domain rdf:resource=\"%s\"/>\n", ref(string(d)))
	}
	for _, r := range p.Range {
		ew.printf("  <rdfs:range rdf:resource=\"%s\"/>\n", ref(string(r)))
	}
	if p.Datatype != "" {
		ew.printf("  <rdfs:range rdf:resource=\"%s\"/>\n", escape(string(p.Datatype)))
	}
	if p.InverseOf != "" {
		ew.printf("  <owl:inverseOf rdf:resource=\"%s\"/>\n", ref(p.InverseOf))
	}
	ew.printf("</%s>\n\n", element)
}

func writeIndividual(ew *errWriter, ind *entities.Individual, ref func(string) string) {
	ew.printf("<owl:NamedIndividual rdf:about=\"%s\">\n", ref(ind.Name))
	for _, c := range ind.Types() {
		ew.printf("  <rdf:type rdf:resource=\"%s\"/>\n", ref(string(c)))
	}
	for _, p := range ind.DataProperties() {
		for _, v := range ind.Data(p) {
			ew.printf("  <%s rdf:datatype=\"%s\">%s</%s>\n", p, escape(string(v.Datatype)), escape(v.Value), p)
		}
	}
	for _, p := range ind.LinkProperties() {
		for _, target := range ind.Links(p) {
			ew.printf("  <%s rdf:resource=\"%s\"/>\n", p, ref(target))
		}
	}
	ew.printf("</owl:NamedIndividual>\n\n")
}

// refFunc returns the attribute value used to reference a local name:
// a fragment relative to xml:base when the namespace is the ontology IRI
// followed by '#', the full IRI otherwise.
func refFunc(o *entities.Ontology) func(string) string {
	relative := o.Namespace() == o.IRI()+"#"
	return func(local string) string {
		if relative {
			return escape("#" + local)
		}
		return escape(o.Term(local))
	}
}

// escape makes s safe for element content and double-quoted attributes.
func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// errWriter keeps the first write error so the serializer can report it once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
