package entities

import "strconv"

// Graph renders the ontology as RDF triples: the ontology header, the
// schema, then every individual in creation order. Disjointness groups use
// blank nodes labelled d<group>_<position>.
func (o *Ontology) Graph() *Graph {
	g := NewGraph()
	iri := func(local string) Term { return IRI(o.Term(local)) }
	add := func(s Term, p string, obj Term) {
		g.Add(Triple{Subject: s, Predicate: p, Object: obj})
	}

	add(IRI(o.IRI()), RDFType, IRI(OWLOntology))

	for _, c := range o.classes {
		add(iri(string(c.Name)), RDFType, IRI(OWLClass))
		if c.Parent != "" {
			add(iri(string(c.Name)), RDFSSubClassOf, iri(string(c.Parent)))
		}
	}

	for _, p := range o.properties {
		subject := iri(p.Name)
		if p.Kind == DataProperty {
			add(subject, RDFType, IRI(OWLDatatypeProperty))
		} else {
			add(subject, RDFType, IRI(OWLObjectProperty))
		}
		for _, d := range p.Domain {
			add(subject, RDFSDomain, iri(string(d)))
		}
		for _, r := range p.Range {
			add(subject, RDFSRange, iri(string(r)))
		}
		if p.Datatype != "" {
			add(subject, RDFSRange, IRI(string(p.Datatype)))
		}
		if p.InverseOf != "" {
			add(subject, OWLInverseOf, iri(p.InverseOf))
		}
	}

	for gi, group := range o.disjoint {
		label := func(pos int) Term {
			return Blank("d" + strconv.Itoa(gi) + "_" + strconv.Itoa(pos))
		}
		head := label(0)
		add(head, RDFType, IRI(OWLAllDisjointClasses))

		list := IRI(RDFNil)
		if len(group) > 0 {
			list = label(1)
		}
		add(head, OWLMembers, list)
		for i, c := range group {
			node := label(i + 1)
			add(node, RDFFirst, iri(string(c)))
			if i == len(group)-1 {
				add(node, RDFRest, IRI(RDFNil))
			} else {
				add(node, RDFRest, label(i+2))
			}
		}
	}

	for _, ind := range o.Individuals() {
		subject := iri(ind.Name)
		add(subject, RDFType, IRI(OWLNamedIndividual))
		for _, c := range ind.types {
			add(subject, RDFType, iri(string(c)))
		}
		for _, p := range ind.dataOrder {
			for _, v := range ind.data[p] {
				add(subject, o.Term(p), LiteralTerm(v.Value, string(v.Datatype), ""))
			}
		}
		for _, p := range ind.linkOrder {
			for _, target := range ind.links[p] {
				add(subject, o.Term(p), iri(target))
			}
		}
	}

	return g
}
