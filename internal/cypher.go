package internal

import (
	"strconv"
	"strings"
)

// Query is the text accumulated by a clause chain. Values are immutable:
// every renderer returns a new Query, so handles held by callers never
// alias each other and partially-built chains can be branched freely.
type Query struct {
	text string
}

func NewQuery() Query { return Query{} }

// String returns the accumulated text with leading/trailing whitespace
// trimmed.
func (q Query) String() string { return strings.TrimSpace(q.text) }

func (q Query) append(fragment string) Query {
	return Query{text: q.text + fragment}
}

// Direction of a relationship pattern.
type Direction int

const (
	Undirected Direction = iota
	Outgoing
	Incoming
)

// Unbounded marks an absent hop bound on a variable-length relationship.
const Unbounded = -1

func (q Query) Match() Query         { return q.append(" MATCH") }
func (q Query) OptionalMatch() Query { return q.append(" OPTIONAL MATCH ") }
func (q Query) Merge() Query         { return q.append(" MERGE") }
func (q Query) Call() Query          { return q.append(" CALL") }
func (q Query) Create() Query        { return q.append(" CREATE") }
func (q Query) OnCreate() Query      { return q.append(" ON CREATE") }
func (q Query) OnMatch() Query       { return q.append(" ON MATCH") }

// Node renders a parenthesized node pattern:
//
//	(ref: label1: label2 {key : value})
//
// The leading space separator is omitted when the text ends in a
// relationship connector, so node patterns attach directly to the
// preceding relationship.
func (q Query) Node(labels []string, refName string, properties Props) Query {
	var labelStr string
	if len(labels) > 0 {
		labelStr = ": " + strings.Join(labels, ": ")
	}
	var propStr string
	if len(properties) > 0 {
		propStr = " {" + properties.Format(":", ", ", true) + "}"
	}
	sep := " "
	if strings.HasSuffix(q.text, "-") ||
		strings.HasSuffix(q.text, ">") ||
		strings.HasSuffix(q.text, "<") {
		sep = ""
	}
	return q.append(sep + "(" + refName + labelStr + propStr + ")")
}

// Relationship renders -[...]-, -[...]-> or <-[...]-. The bracketed
// filler is omitted entirely when neither a ref name nor a label is
// given.
func (q Query) Relationship(dir Direction, label, refName string, properties Props) Query {
	var typeStr string
	if label != "" {
		typeStr = ": " + label
	}
	var propStr string
	if len(properties) > 0 {
		propStr = " {" + properties.Format(":", ", ", true) + "}"
	}
	var inner string
	if refName != "" || typeStr != "" {
		inner = "[" + refName + typeStr + propStr + "]"
	}
	switch dir {
	case Outgoing:
		return q.append("-" + inner + "->")
	case Incoming:
		return q.append("<-" + inner + "-")
	default:
		return q.append("-" + inner + "-")
	}
}

// RelationshipVarLength renders a variable-length relationship. Pass
// Unbounded to leave a bound open: (Unbounded, Unbounded) renders -[*]-,
// equal bounds collapse to -[*N]-, anything else renders -[*min..max]-
// with absent bounds left empty.
func (q Query) RelationshipVarLength(minHops, maxHops int) Query {
	var length string
	switch {
	case minHops == Unbounded && maxHops == Unbounded:
		length = "*"
	case minHops == maxHops:
		length = "*" + strconv.Itoa(minHops)
	default:
		var minStr, maxStr string
		if minHops != Unbounded {
			minStr = strconv.Itoa(minHops)
		}
		if maxHops != Unbounded {
			maxStr = strconv.Itoa(maxHops)
		}
		length = "*" + minStr + ".." + maxStr
	}
	return q.append("-[" + length + "]-")
}

func (q Query) Where(filters Props, comparisonOperator, booleanOperator string) Query {
	return q.append(" WHERE " + filters.Format(comparisonOperator, booleanOperator, true))
}

func (q Query) WhereLiteral(statement string) Query {
	return q.append(" WHERE " + statement)
}

func (q Query) Set(properties Props, escape bool) Query {
	return q.append(" SET " + properties.Format("=", ", ", escape))
}

func (q Query) Delete(refName string, detach bool) Query {
	if detach {
		return q.append(" DETACH DELETE " + refName)
	}
	return q.append(" DELETE " + refName)
}

func (q Query) Remove(properties []string) Query {
	return q.append(" REMOVE " + strings.Join(properties, ", "))
}

func (q Query) ReturnLiteral(literal string) Query {
	return q.append(" RETURN " + literal)
}

// ReturnMapping projects each mapping as `name as alias`. A mapping
// without an alias projects the flattened name alone.
func (q Query) ReturnMapping(mappings []Mapping) Query {
	parts := make([]string, len(mappings))
	for i, m := range mappings {
		if m.Alias != "" {
			parts[i] = m.Name + " as " + m.Alias
		} else {
			parts[i] = m.DefaultAlias()
		}
	}
	return q.append(" RETURN " + strings.Join(parts, ", "))
}

func (q Query) With(variables string) Query {
	return q.append(" WITH " + variables)
}

func (q Query) Unwind(variables string) Query {
	return q.append(" UNWIND " + variables)
}

// Limit and Skip accept an integer count or a raw Cypher expression
// string; neither is validated.
func (q Query) Limit(count any) Query {
	return q.append(" LIMIT " + FormatValue(count, false))
}

func (q Query) Skip(count any) Query {
	return q.append(" SKIP " + FormatValue(count, false))
}

func (q Query) OrderBy(properties []string, ascending bool) Query {
	order := " ASC"
	if !ascending {
		order = " DESC"
	}
	return q.append(" ORDER BY " + strings.Join(properties, ", ") + order)
}

// OperatorStart opens an operator invocation such as SHORTESTPATH. The
// parenthesis stays open until OperatorEnd closes it.
func (q Query) OperatorStart(operator, refName, args string) Query {
	var result string
	if refName != "" {
		result = refName + " = "
	}
	var arguments string
	if args != "" {
		arguments = " " + args
	}
	return q.append(" " + result + operator + "(" + arguments)
}

func (q Query) OperatorEnd() Query { return q.append(" )") }

func (q Query) Yield(mappings []Mapping) Query {
	parts := make([]string, len(mappings))
	for i, m := range mappings {
		parts[i] = m.Name + " as " + m.DefaultAlias()
	}
	return q.append(" YIELD " + strings.Join(parts, ", "))
}

func (q Query) CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) Query {
	return q.append(
		" CASE WHEN " + filters.Format(comparisonOperator, booleanOperator, true) +
			" THEN " + onTrue + " ELSE " + onFalse + " END as " + refName,
	)
}

// Raw splices unchecked text into the query.
func (q Query) Raw(cypher string) Query {
	return Query{text: strings.TrimSpace(q.text) + " " + strings.TrimSpace(cypher)}
}
