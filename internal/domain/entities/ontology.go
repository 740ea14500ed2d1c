package entities

import "strings"

// Ontology holds a declared schema (TBox) and the individuals asserted
// against it (ABox). Individuals are kept in creation order so that
// serialization is reproducible.
type Ontology struct {
	namespace string

	classes    []ClassDef
	parents    map[Class]Class
	properties []PropertyDef
	propIndex  map[string]int
	disjoint   [][]Class

	individuals map[string]*Individual
	order       []string
}

// NewOntology creates an empty ontology for the given namespace.
// The namespace is the prefix of every class, property and individual IRI,
// for example "http://www.semanticweb.org/dota2-ontology#".
func NewOntology(namespace string) *Ontology {
	return &Ontology{
		namespace:   namespace,
		parents:     make(map[Class]Class),
		propIndex:   make(map[string]int),
		individuals: make(map[string]*Individual),
	}
}

// Namespace returns the namespace prefix.
func (o *Ontology) Namespace() string {
	return o.namespace
}

// IRI returns the ontology IRI: the namespace without its trailing separator.
func (o *Ontology) IRI() string {
	return strings.TrimRight(o.namespace, "#/")
}

// Term returns the IRI of a local name in this ontology's namespace.
func (o *Ontology) Term(local string) string {
	return o.namespace + local
}

// Declare adds classes, properties and disjointness axioms. Definitions
// already present are left untouched, so declaring the same tables twice
// is a no-op.
func (o *Ontology) Declare(classes []ClassDef, properties []PropertyDef, disjoint [][]Class) {
	for _, c := range classes {
		if o.HasClass(c.Name) {
			continue
		}
		o.classes = append(o.classes, c)
		o.parents[c.Name] = c.Parent
	}

	for _, p := range properties {
		if _, ok := o.propIndex[p.Name]; ok {
			continue
		}
		o.propIndex[p.Name] = len(o.properties)
		o.properties = append(o.properties, p)
	}

	for _, group := range disjoint {
		if !o.hasDisjointGroup(group) {
			o.disjoint = append(o.disjoint, append([]Class(nil), group...))
		}
	}
}

func (o *Ontology) hasDisjointGroup(group []Class) bool {
	for _, existing := range o.disjoint {
		if len(existing) != len(group) {
			continue
		}
		same := true
		for i := range existing {
			if existing[i] != group[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

// ClassDefs returns the declared classes in declaration order.
func (o *Ontology) ClassDefs() []ClassDef {
	return o.classes
}

// PropertyDefs returns the declared properties in declaration order.
func (o *Ontology) PropertyDefs() []PropertyDef {
	return o.properties
}

// Property looks up a declared property by name.
func (o *Ontology) Property(name string) (PropertyDef, bool) {
	idx, ok := o.propIndex[name]
	if !ok {
		return PropertyDef{}, false
	}
	return o.properties[idx], true
}

// DisjointGroups returns the declared groups of pairwise-disjoint classes.
func (o *Ontology) DisjointGroups() [][]Class {
	return o.disjoint
}

// HasClass reports whether the class has been declared.
func (o *Ontology) HasClass(c Class) bool {
	_, ok := o.parents[c]
	return ok
}

// IsSubclassOf reports whether c equals ancestor or descends from it.
func (o *Ontology) IsSubclassOf(c, ancestor Class) bool {
	for cur := c; cur != ""; cur = o.parents[cur] {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Individual looks up an individual by name.
func (o *Ontology) Individual(name string) (*Individual, bool) {
	ind, ok := o.individuals[name]
	return ind, ok
}

// GetOrCreate returns the individual with the given name, creating it when
// it does not exist yet, and tags it with class.
func (o *Ontology) GetOrCreate(name string, class Class) *Individual {
	ind, ok := o.individuals[name]
	if !ok {
		ind = newIndividual(name)
		o.individuals[name] = ind
		o.order = append(o.order, name)
	}
	o.Tag(ind, class)
	return ind
}

// Tag asserts class on the individual. A class that is an ancestor of an
// asserted class adds nothing; a class that refines an asserted class
// replaces it.
func (o *Ontology) Tag(ind *Individual, class Class) {
	if class == "" {
		return
	}

	for _, t := range ind.types {
		if o.IsSubclassOf(t, class) {
			return
		}
	}

	kept := ind.types[:0]
	for _, t := range ind.types {
		if !o.IsSubclassOf(class, t) {
			kept = append(kept, t)
		}
	}
	ind.types = append(kept, class)
}

// Individuals returns all individuals in creation order.
func (o *Ontology) Individuals() []*Individual {
	result := make([]*Individual, 0, len(o.order))
	for _, name := range o.order {
		result = append(result, o.individuals[name])
	}
	return result
}

// Len returns the number of individuals.
func (o *Ontology) Len() int {
	return len(o.order)
}

// CountOf returns how many individuals are tagged with class or a subclass of it.
func (o *Ontology) CountOf(class Class) int {
	count := 0
	for _, ind := range o.individuals {
		for _, t := range ind.types {
			if o.IsSubclassOf(t, class) {
				count++
				break
			}
		}
	}
	return count
}
