package entities

// Well-known vocabulary IRIs.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"

	RDFType  = RDFNamespace + "type"
	RDFFirst = RDFNamespace + "first"
	RDFRest  = RDFNamespace + "rest"
	RDFNil   = RDFNamespace + "nil"

	RDFSSubClassOf = RDFSNamespace + "subClassOf"
	RDFSDomain     = RDFSNamespace + "domain"
	RDFSRange      = RDFSNamespace + "range"

	OWLOntology           = OWLNamespace + "Ontology"
	OWLClass              = OWLNamespace + "Class"
	OWLObjectProperty     = OWLNamespace + "ObjectProperty"
	OWLDatatypeProperty   = OWLNamespace + "DatatypeProperty"
	OWLInverseOf          = OWLNamespace + "inverseOf"
	OWLAllDisjointClasses = OWLNamespace + "AllDisjointClasses"
	OWLMembers            = OWLNamespace + "members"
	OWLNamedIndividual    = OWLNamespace + "NamedIndividual"
)

// TermKind tells IRIs, literals and blank nodes apart.
type TermKind int

const (
	TermIRI TermKind = iota
	TermLiteral
	TermBlank
)

// Term is a node of an RDF graph.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Lang     string
}

// IRI creates an IRI term.
func IRI(value string) Term {
	return Term{Kind: TermIRI, Value: value}
}

// LiteralTerm creates a literal term.
func LiteralTerm(value, datatype, lang string) Term {
	return Term{Kind: TermLiteral, Value: value, Datatype: datatype, Lang: lang}
}

// Blank creates a blank node term.
func Blank(label string) Term {
	return Term{Kind: TermBlank, Value: label}
}

// Triple is a subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate string
	Object    Term
}

// Graph is an in-memory triple set with subject and predicate indexes.
// Triples keep their insertion order.
type Graph struct {
	triples     []Triple
	seen        map[Triple]struct{}
	bySubject   map[Term][]int
	byPredicate map[string][]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:        make(map[Triple]struct{}),
		bySubject:   make(map[Term][]int),
		byPredicate: make(map[string][]int),
	}
}

// Add inserts a triple and reports whether it was new.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.seen[t]; ok {
		return false
	}
	g.seen[t] = struct{}{}
	idx := len(g.triples)
	g.triples = append(g.triples, t)
	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], idx)
	g.byPredicate[t.Predicate] = append(g.byPredicate[t.Predicate], idx)
	return true
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// All returns every triple in insertion order.
func (g *Graph) All() []Triple {
	return g.triples
}

// Triples returns the triples with the given predicate.
func (g *Graph) Triples(predicate string) []Triple {
	return g.collect(g.byPredicate[predicate])
}

// PredicateObjects returns every triple whose subject is s.
func (g *Graph) PredicateObjects(s Term) []Triple {
	return g.collect(g.bySubject[s])
}

// Subjects returns the subjects of triples matching predicate and object.
func (g *Graph) Subjects(predicate string, object Term) []Term {
	var result []Term
	for _, idx := range g.byPredicate[predicate] {
		if g.triples[idx].Object == object {
			result = append(result, g.triples[idx].Subject)
		}
	}
	return result
}

func (g *Graph) collect(indexes []int) []Triple {
	result := make([]Triple, 0, len(indexes))
	for _, idx := range indexes {
		result = append(result, g.triples[idx])
	}
	return result
}
