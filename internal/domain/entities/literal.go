package entities

import (
	"strconv"
	"strings"
)

// Datatype is an XML Schema datatype IRI.
type Datatype string

// XSDNamespace is the XML Schema datatype namespace.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

// Supported literal datatypes.
const (
	XSDString  Datatype = XSDNamespace + "string"
	XSDInteger Datatype = XSDNamespace + "integer"
	XSDDecimal Datatype = XSDNamespace + "decimal"
	XSDBoolean Datatype = XSDNamespace + "boolean"
)

// Literal is a typed data value attached to an individual.
type Literal struct {
	Value    string
	Datatype Datatype
}

// StringLiteral creates an xsd:string literal.
func StringLiteral(s string) Literal {
	return Literal{Value: s, Datatype: XSDString}
}

// IntLiteral creates an xsd:integer literal.
func IntLiteral(n int64) Literal {
	return Literal{Value: strconv.FormatInt(n, 10), Datatype: XSDInteger}
}

// FloatLiteral creates an xsd:decimal literal. Whole numbers keep a ".0"
// suffix so 1.0 and 1 stay distinguishable in the serialized ontology.
func FloatLiteral(f float64) Literal {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return Literal{Value: s, Datatype: XSDDecimal}
}

// BoolLiteral creates an xsd:boolean literal.
func BoolLiteral(b bool) Literal {
	return Literal{Value: strconv.FormatBool(b), Datatype: XSDBoolean}
}
