// Package cymple assembles Cypher query strings through chained method
// calls. Each clause method appends its fragment and returns a value
// typed as the set of clauses that may legally follow, so a chain that
// would produce malformed Cypher does not compile. The builder only
// guarantees the shape of the emitted text; it performs no validation
// against a real graph schema and never talks to a database itself (see
// [Runner] for the execution glue).
package cymple

import (
	"fmt"

	"github.com/iamkhav/Cymple/internal"
)

type (
	// Prop is a single property name/value pair.
	Prop = internal.Prop
	// Props is an ordered property set; insertion order is preserved in
	// the rendered text.
	Props = internal.Props
	// Mapping pairs a queried name with its projected alias.
	Mapping = internal.Mapping
)

// Unbounded marks an absent hop bound on a variable-length relationship.
const Unbounded = internal.Unbounded

// ErrUnsupportedValue is the cause of the panic raised when a property
// value outside the string/number/boolean domain is rendered.
var ErrUnsupportedValue = internal.ErrUnsupportedValue

// Query is the surface every clause state shares: readout plus the raw
// escape hatch.
type Query interface {
	fmt.Stringer

	// Get returns the accumulated query text, trimmed.
	Get() string

	// Cypher splices raw text into the query, bypassing the clause
	// grammar entirely. The resulting state permits every clause; the
	// spliced content is the caller's responsibility.
	Cypher(cypher string) AnyAvailable
}

// Builder is the entry point of a query chain.
type Builder interface {
	QueryStartAvailable

	// Reset discards any accumulated text and returns to the start state.
	Reset() Builder
}

// NewQueryBuilder returns a Builder in the query-start state with empty
// text.
func NewQueryBuilder() Builder {
	return newBuilder(internal.NewQuery())
}

// QueryStartAvailable offers the clauses that may open a query (or a new
// query part mid-chain).
type QueryStartAvailable interface {
	Query

	Match() MatchAvailable
	MatchOptional() MatchAvailable
	Merge() MergeAvailable
	Call() CallAvailable
	Create() CreateAvailable
}

type MatchAvailable interface {
	Query

	Node(labels []string, refName string, properties Props) NodeAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
}

type CallAvailable interface {
	Query

	Node(labels []string, refName string, properties Props) NodeAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
}

// MergeAvailable opens the merge track: node patterns chained from here
// keep ON CREATE / ON MATCH within reach.
type MergeAvailable interface {
	Query

	Node(labels []string, refName string, properties Props) NodeAfterMergeAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
}

type CreateAvailable interface {
	Query

	Node(labels []string, refName string, properties Props) NodeAvailable
}

type NodeAvailable interface {
	QueryStartAvailable

	Related(label, refName string, properties Props) RelationAvailable
	RelatedTo(label, refName string, properties Props) RelationAvailable
	RelatedFrom(label, refName string, properties Props) RelationAvailable
	RelatedVariableLen(minHops, maxHops int) RelationAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Delete(refName string) DeleteAvailable
	DetachDelete(refName string) DeleteAvailable
	With(variables string) WithAvailable
	Where(name, comparisonOperator string, value any) WhereAvailable
	WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable
	WhereLiteral(statement string) WhereAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
	OperatorEnd() OperatorEndAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	Remove(properties ...string) RemoveAvailable
}

// NodeAfterMergeAvailable is the merge-track counterpart of
// NodeAvailable. It trades the WHERE and REMOVE clauses for
// ON CREATE / ON MATCH, and its relationship and SET successors stay on
// the merge track.
type NodeAfterMergeAvailable interface {
	QueryStartAvailable

	Related(label, refName string, properties Props) RelationAfterMergeAvailable
	RelatedTo(label, refName string, properties Props) RelationAfterMergeAvailable
	RelatedFrom(label, refName string, properties Props) RelationAfterMergeAvailable
	RelatedVariableLen(minHops, maxHops int) RelationAfterMergeAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Delete(refName string) DeleteAvailable
	DetachDelete(refName string) DeleteAvailable
	With(variables string) WithAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
	OperatorEnd() OperatorEndAvailable
	Set(properties Props) SetAfterMergeAvailable
	SetLiteral(properties Props) SetAfterMergeAvailable
	OnCreate() OnCreateAvailable
	OnMatch() OnMatchAvailable
}

type RelationAvailable interface {
	Query

	Node(labels []string, refName string, properties Props) NodeAvailable
}

type RelationAfterMergeAvailable interface {
	Query

	Node(labels []string, refName string, properties Props) NodeAfterMergeAvailable
}

type OnCreateAvailable interface {
	Query

	Set(properties Props) SetAfterMergeAvailable
	SetLiteral(properties Props) SetAfterMergeAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
}

type OnMatchAvailable interface {
	Query

	Set(properties Props) SetAfterMergeAvailable
	SetLiteral(properties Props) SetAfterMergeAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
}

type OperatorStartAvailable interface {
	QueryStartAvailable

	Node(labels []string, refName string, properties Props) NodeAvailable
	With(variables string) WithAvailable
	OperatorEnd() OperatorEndAvailable
}

type OperatorEndAvailable interface {
	QueryStartAvailable

	Yield(mappings ...Mapping) YieldAvailable
	With(variables string) WithAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
}

type YieldAvailable interface {
	QueryStartAvailable

	Node(labels []string, refName string, properties Props) NodeAvailable
	With(variables string) WithAvailable
}

type CaseWhenAvailable interface {
	QueryStartAvailable

	With(variables string) WithAvailable
	Unwind(variables string) UnwindAvailable
	Where(name, comparisonOperator string, value any) WhereAvailable
	WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable
	WhereLiteral(statement string) WhereAvailable
	CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) CaseWhenAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
}

type DeleteAvailable interface {
	Query

	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) CaseWhenAvailable
}

type LimitAvailable interface {
	QueryStartAvailable

	With(variables string) WithAvailable
	Unwind(variables string) UnwindAvailable
	Where(name, comparisonOperator string, value any) WhereAvailable
	WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable
	WhereLiteral(statement string) WhereAvailable
	CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) CaseWhenAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	Skip(count any) SkipAvailable
}

type SkipAvailable interface {
	QueryStartAvailable

	With(variables string) WithAvailable
	Unwind(variables string) UnwindAvailable
	Where(name, comparisonOperator string, value any) WhereAvailable
	WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable
	WhereLiteral(statement string) WhereAvailable
	CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) CaseWhenAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	Remove(properties ...string) RemoveAvailable
	Limit(count any) LimitAvailable
}

type OrderByAvailable interface {
	Query

	Limit(count any) LimitAvailable
	Skip(count any) SkipAvailable
}

type RemoveAvailable interface {
	Query

	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
}

type ReturnAvailable interface {
	QueryStartAvailable

	With(variables string) WithAvailable
	Unwind(variables string) UnwindAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Limit(count any) LimitAvailable
	Skip(count any) SkipAvailable
	OrderBy(properties ...string) OrderByAvailable
	OrderByDesc(properties ...string) OrderByAvailable
}

type SetAvailable interface {
	QueryStartAvailable

	With(variables string) WithAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	Remove(properties ...string) RemoveAvailable
	Unwind(variables string) UnwindAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
}

// SetAfterMergeAvailable is the merge-track SET successor; unlike
// SetAvailable it keeps ON CREATE / ON MATCH reachable and drops REMOVE.
type SetAfterMergeAvailable interface {
	QueryStartAvailable

	OnCreate() OnCreateAvailable
	OnMatch() OnMatchAvailable
	With(variables string) WithAvailable
	Set(properties Props) SetAfterMergeAvailable
	SetLiteral(properties Props) SetAfterMergeAvailable
	Unwind(variables string) UnwindAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
}

type UnwindAvailable interface {
	QueryStartAvailable

	With(variables string) WithAvailable
	Unwind(variables string) UnwindAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Remove(properties ...string) RemoveAvailable
}

type WhereAvailable interface {
	QueryStartAvailable

	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Delete(refName string) DeleteAvailable
	DetachDelete(refName string) DeleteAvailable
	With(variables string) WithAvailable
	Where(name, comparisonOperator string, value any) WhereAvailable
	WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable
	WhereLiteral(statement string) WhereAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	Remove(properties ...string) RemoveAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
}

type WithAvailable interface {
	QueryStartAvailable

	With(variables string) WithAvailable
	Unwind(variables string) UnwindAvailable
	Where(name, comparisonOperator string, value any) WhereAvailable
	WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable
	WhereLiteral(statement string) WhereAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	Remove(properties ...string) RemoveAvailable
	CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) CaseWhenAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Limit(count any) LimitAvailable
	Skip(count any) SkipAvailable
	OrderBy(properties ...string) OrderByAvailable
	OrderByDesc(properties ...string) OrderByAvailable
}

// AnyAvailable is the deliberately unchecked state reached through
// [Query.Cypher]: every clause is on offer, with the standard-track
// variant standing in wherever the two tracks' signatures collide.
type AnyAvailable interface {
	QueryStartAvailable

	Node(labels []string, refName string, properties Props) NodeAvailable
	Related(label, refName string, properties Props) RelationAvailable
	RelatedTo(label, refName string, properties Props) RelationAvailable
	RelatedFrom(label, refName string, properties Props) RelationAvailable
	RelatedVariableLen(minHops, maxHops int) RelationAvailable
	Where(name, comparisonOperator string, value any) WhereAvailable
	WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable
	WhereLiteral(statement string) WhereAvailable
	Set(properties Props) SetAvailable
	SetLiteral(properties Props) SetAvailable
	OnCreate() OnCreateAvailable
	OnMatch() OnMatchAvailable
	Delete(refName string) DeleteAvailable
	DetachDelete(refName string) DeleteAvailable
	Remove(properties ...string) RemoveAvailable
	With(variables string) WithAvailable
	Unwind(variables string) UnwindAvailable
	ReturnLiteral(literal string) ReturnAvailable
	ReturnMapping(mappings ...Mapping) ReturnAvailable
	Limit(count any) LimitAvailable
	Skip(count any) SkipAvailable
	OrderBy(properties ...string) OrderByAvailable
	OrderByDesc(properties ...string) OrderByAvailable
	CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) CaseWhenAvailable
	OperatorStart(operator, refName, args string) OperatorStartAvailable
	OperatorEnd() OperatorEndAvailable
	Yield(mappings ...Mapping) YieldAvailable
}
