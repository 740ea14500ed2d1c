package entities

// Individual is a named node of the ontology: its asserted classes, its
// data values and its links to other individuals. Property values have set
// semantics; adding the same value twice keeps one.
type Individual struct {
	Name string

	types []Class

	data      map[string][]Literal
	dataOrder []string

	links     map[string][]string
	linkOrder []string
}

func newIndividual(name string) *Individual {
	return &Individual{
		Name:  name,
		data:  make(map[string][]Literal),
		links: make(map[string][]string),
	}
}

// Types returns the asserted classes.
func (i *Individual) Types() []Class {
	return i.types
}

// HasType reports whether class is asserted directly.
func (i *Individual) HasType(class Class) bool {
	for _, t := range i.types {
		if t == class {
			return true
		}
	}
	return false
}

// AddData appends a data value for the property.
func (i *Individual) AddData(property string, value Literal) {
	values, ok := i.data[property]
	if !ok {
		i.dataOrder = append(i.dataOrder, property)
	}
	for _, v := range values {
		if v == value {
			return
		}
	}
	i.data[property] = append(values, value)
}

// Data returns the values of a data property.
func (i *Individual) Data(property string) []Literal {
	return i.data[property]
}

// DataProperties returns the data properties set on the individual, in the
// order they were first set.
func (i *Individual) DataProperties() []string {
	return i.dataOrder
}

// AddLink links the individual to the named target through the property.
func (i *Individual) AddLink(property, target string) {
	targets, ok := i.links[property]
	if !ok {
		i.linkOrder = append(i.linkOrder, property)
	}
	for _, t := range targets {
		if t == target {
			return
		}
	}
	i.links[property] = append(targets, target)
}

// Links returns the targets of an object property.
func (i *Individual) Links(property string) []string {
	return i.links[property]
}

// LinkProperties returns the object properties set on the individual, in the
// order they were first set.
func (i *Individual) LinkProperties() []string {
	return i.linkOrder
}
