package cymple

import (
	"github.com/iamkhav/Cymple/internal"
)

// Every state struct below is assembled from per-clause mixin structs;
// each mixin carries its own copy of the (immutable) query text and
// implements one clause group. Mixins whose successor state depends on
// the merge track are generic over the successor, with a `to` factory
// choosing the track, so the clause is implemented once and the grammar
// decides where it lands.

type queryCore struct{ q internal.Query }

func (c queryCore) String() string { return c.q.String() }
func (c queryCore) Get() string    { return c.q.String() }

func (c queryCore) Cypher(cypher string) AnyAvailable {
	return newAny(c.q.Raw(cypher))
}

type matchClause struct{ q internal.Query }

func (c matchClause) Match() MatchAvailable         { return newMatch(c.q.Match()) }
func (c matchClause) MatchOptional() MatchAvailable { return newMatch(c.q.OptionalMatch()) }

type mergeClause struct{ q internal.Query }

func (c mergeClause) Merge() MergeAvailable { return newMerge(c.q.Merge()) }

type callClause struct{ q internal.Query }

func (c callClause) Call() CallAvailable { return newCall(c.q.Call()) }

type createClause struct{ q internal.Query }

func (c createClause) Create() CreateAvailable { return newCreate(c.q.Create()) }

// queryStartClauses bundles the four clauses that may open a query part.
type queryStartClauses struct {
	matchClause
	mergeClause
	callClause
	createClause
}

func newQueryStartClauses(q internal.Query) queryStartClauses {
	return queryStartClauses{
		matchClause:  matchClause{q},
		mergeClause:  mergeClause{q},
		callClause:   callClause{q},
		createClause: createClause{q},
	}
}

type nodeClause[To any] struct {
	q  internal.Query
	to func(internal.Query) To
}

func (c nodeClause[To]) Node(labels []string, refName string, properties Props) To {
	return c.to(c.q.Node(labels, refName, properties))
}

type relationClause[To any] struct {
	q  internal.Query
	to func(internal.Query) To
}

func (c relationClause[To]) Related(label, refName string, properties Props) To {
	return c.to(c.q.Relationship(internal.Undirected, label, refName, properties))
}

func (c relationClause[To]) RelatedTo(label, refName string, properties Props) To {
	return c.to(c.q.Relationship(internal.Outgoing, label, refName, properties))
}

func (c relationClause[To]) RelatedFrom(label, refName string, properties Props) To {
	return c.to(c.q.Relationship(internal.Incoming, label, refName, properties))
}

func (c relationClause[To]) RelatedVariableLen(minHops, maxHops int) To {
	return c.to(c.q.RelationshipVarLength(minHops, maxHops))
}

type setClause[To any] struct {
	q  internal.Query
	to func(internal.Query) To
}

func (c setClause[To]) Set(properties Props) To {
	return c.to(c.q.Set(properties, true))
}

// SetLiteral writes property values verbatim, without escaping.
func (c setClause[To]) SetLiteral(properties Props) To {
	return c.to(c.q.Set(properties, false))
}

type whereClause struct{ q internal.Query }

func (c whereClause) Where(name, comparisonOperator string, value any) WhereAvailable {
	return c.WhereMultiple(Props{{Key: name, Value: value}}, comparisonOperator, " AND ")
}

func (c whereClause) WhereMultiple(filters Props, comparisonOperator, booleanOperator string) WhereAvailable {
	return newWhere(c.q.Where(filters, comparisonOperator, booleanOperator))
}

func (c whereClause) WhereLiteral(statement string) WhereAvailable {
	return newWhere(c.q.WhereLiteral(statement))
}

type withClause struct{ q internal.Query }

func (c withClause) With(variables string) WithAvailable {
	return newWith(c.q.With(variables))
}

type unwindClause struct{ q internal.Query }

func (c unwindClause) Unwind(variables string) UnwindAvailable {
	return newUnwind(c.q.Unwind(variables))
}

type returnClause struct{ q internal.Query }

func (c returnClause) ReturnLiteral(literal string) ReturnAvailable {
	return newReturn(c.q.ReturnLiteral(literal))
}

func (c returnClause) ReturnMapping(mappings ...Mapping) ReturnAvailable {
	return newReturn(c.q.ReturnMapping(mappings))
}

type deleteClause struct{ q internal.Query }

func (c deleteClause) Delete(refName string) DeleteAvailable {
	return newDelete(c.q.Delete(refName, false))
}

func (c deleteClause) DetachDelete(refName string) DeleteAvailable {
	return newDelete(c.q.Delete(refName, true))
}

type removeClause struct{ q internal.Query }

func (c removeClause) Remove(properties ...string) RemoveAvailable {
	return newRemove(c.q.Remove(properties))
}

type limitClause struct{ q internal.Query }

func (c limitClause) Limit(count any) LimitAvailable {
	return newLimit(c.q.Limit(count))
}

type skipClause struct{ q internal.Query }

func (c skipClause) Skip(count any) SkipAvailable {
	return newSkip(c.q.Skip(count))
}

type orderByClause struct{ q internal.Query }

func (c orderByClause) OrderBy(properties ...string) OrderByAvailable {
	return newOrderBy(c.q.OrderBy(properties, true))
}

func (c orderByClause) OrderByDesc(properties ...string) OrderByAvailable {
	return newOrderBy(c.q.OrderBy(properties, false))
}

type onCreateClause struct{ q internal.Query }

func (c onCreateClause) OnCreate() OnCreateAvailable {
	return newOnCreate(c.q.OnCreate())
}

type onMatchClause struct{ q internal.Query }

func (c onMatchClause) OnMatch() OnMatchAvailable {
	return newOnMatch(c.q.OnMatch())
}

type operatorStartClause struct{ q internal.Query }

func (c operatorStartClause) OperatorStart(operator, refName, args string) OperatorStartAvailable {
	return newOperatorStart(c.q.OperatorStart(operator, refName, args))
}

type operatorEndClause struct{ q internal.Query }

func (c operatorEndClause) OperatorEnd() OperatorEndAvailable {
	return newOperatorEnd(c.q.OperatorEnd())
}

type yieldClause struct{ q internal.Query }

func (c yieldClause) Yield(mappings ...Mapping) YieldAvailable {
	return newYield(c.q.Yield(mappings))
}

type caseWhenClause struct{ q internal.Query }

func (c caseWhenClause) CaseWhen(filters Props, onTrue, onFalse, refName, comparisonOperator, booleanOperator string) CaseWhenAvailable {
	return newCaseWhen(c.q.CaseWhen(filters, onTrue, onFalse, refName, comparisonOperator, booleanOperator))
}

type builderState struct {
	queryCore
	queryStartClauses
}

func newBuilder(q internal.Query) Builder {
	return builderState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
	}
}

func (b builderState) Reset() Builder {
	return newBuilder(internal.NewQuery())
}

type matchState struct {
	queryCore
	nodeClause[NodeAvailable]
	returnClause
	operatorStartClause
}

func newMatch(q internal.Query) MatchAvailable {
	return matchState{
		queryCore:           queryCore{q},
		nodeClause:          nodeClause[NodeAvailable]{q, newNode},
		returnClause:        returnClause{q},
		operatorStartClause: operatorStartClause{q},
	}
}

type callState struct {
	queryCore
	nodeClause[NodeAvailable]
	returnClause
	operatorStartClause
}

func newCall(q internal.Query) CallAvailable {
	return callState{
		queryCore:           queryCore{q},
		nodeClause:          nodeClause[NodeAvailable]{q, newNode},
		returnClause:        returnClause{q},
		operatorStartClause: operatorStartClause{q},
	}
}

type mergeState struct {
	queryCore
	nodeClause[NodeAfterMergeAvailable]
	returnClause
	operatorStartClause
}

func newMerge(q internal.Query) MergeAvailable {
	return mergeState{
		queryCore:           queryCore{q},
		nodeClause:          nodeClause[NodeAfterMergeAvailable]{q, newNodeAfterMerge},
		returnClause:        returnClause{q},
		operatorStartClause: operatorStartClause{q},
	}
}

type createState struct {
	queryCore
	nodeClause[NodeAvailable]
}

func newCreate(q internal.Query) CreateAvailable {
	return createState{
		queryCore:  queryCore{q},
		nodeClause: nodeClause[NodeAvailable]{q, newNode},
	}
}

type nodeState struct {
	queryCore
	queryStartClauses
	relationClause[RelationAvailable]
	returnClause
	deleteClause
	withClause
	whereClause
	operatorStartClause
	operatorEndClause
	setClause[SetAvailable]
	removeClause
}

func newNode(q internal.Query) NodeAvailable {
	return nodeState{
		queryCore:           queryCore{q},
		queryStartClauses:   newQueryStartClauses(q),
		relationClause:      relationClause[RelationAvailable]{q, newRelation},
		returnClause:        returnClause{q},
		deleteClause:        deleteClause{q},
		withClause:          withClause{q},
		whereClause:         whereClause{q},
		operatorStartClause: operatorStartClause{q},
		operatorEndClause:   operatorEndClause{q},
		setClause:           setClause[SetAvailable]{q, newSet},
		removeClause:        removeClause{q},
	}
}

type nodeAfterMergeState struct {
	queryCore
	queryStartClauses
	relationClause[RelationAfterMergeAvailable]
	returnClause
	deleteClause
	withClause
	operatorStartClause
	operatorEndClause
	setClause[SetAfterMergeAvailable]
	onCreateClause
	onMatchClause
}

func newNodeAfterMerge(q internal.Query) NodeAfterMergeAvailable {
	return nodeAfterMergeState{
		queryCore:           queryCore{q},
		queryStartClauses:   newQueryStartClauses(q),
		relationClause:      relationClause[RelationAfterMergeAvailable]{q, newRelationAfterMerge},
		returnClause:        returnClause{q},
		deleteClause:        deleteClause{q},
		withClause:          withClause{q},
		operatorStartClause: operatorStartClause{q},
		operatorEndClause:   operatorEndClause{q},
		setClause:           setClause[SetAfterMergeAvailable]{q, newSetAfterMerge},
		onCreateClause:      onCreateClause{q},
		onMatchClause:       onMatchClause{q},
	}
}

type relationState struct {
	queryCore
	nodeClause[NodeAvailable]
}

func newRelation(q internal.Query) RelationAvailable {
	return relationState{
		queryCore:  queryCore{q},
		nodeClause: nodeClause[NodeAvailable]{q, newNode},
	}
}

type relationAfterMergeState struct {
	queryCore
	nodeClause[NodeAfterMergeAvailable]
}

func newRelationAfterMerge(q internal.Query) RelationAfterMergeAvailable {
	return relationAfterMergeState{
		queryCore:  queryCore{q},
		nodeClause: nodeClause[NodeAfterMergeAvailable]{q, newNodeAfterMerge},
	}
}

type onCreateState struct {
	queryCore
	setClause[SetAfterMergeAvailable]
	operatorStartClause
}

func newOnCreate(q internal.Query) OnCreateAvailable {
	return onCreateState{
		queryCore:           queryCore{q},
		setClause:           setClause[SetAfterMergeAvailable]{q, newSetAfterMerge},
		operatorStartClause: operatorStartClause{q},
	}
}

type onMatchState struct {
	queryCore
	setClause[SetAfterMergeAvailable]
	operatorStartClause
}

func newOnMatch(q internal.Query) OnMatchAvailable {
	return onMatchState{
		queryCore:           queryCore{q},
		setClause:           setClause[SetAfterMergeAvailable]{q, newSetAfterMerge},
		operatorStartClause: operatorStartClause{q},
	}
}

type operatorStartState struct {
	queryCore
	queryStartClauses
	nodeClause[NodeAvailable]
	withClause
	operatorEndClause
}

func newOperatorStart(q internal.Query) OperatorStartAvailable {
	return operatorStartState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		nodeClause:        nodeClause[NodeAvailable]{q, newNode},
		withClause:        withClause{q},
		operatorEndClause: operatorEndClause{q},
	}
}

type operatorEndState struct {
	queryCore
	queryStartClauses
	yieldClause
	withClause
	returnClause
}

func newOperatorEnd(q internal.Query) OperatorEndAvailable {
	return operatorEndState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		yieldClause:       yieldClause{q},
		withClause:        withClause{q},
		returnClause:      returnClause{q},
	}
}

type yieldState struct {
	queryCore
	queryStartClauses
	nodeClause[NodeAvailable]
	withClause
}

func newYield(q internal.Query) YieldAvailable {
	return yieldState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		nodeClause:        nodeClause[NodeAvailable]{q, newNode},
		withClause:        withClause{q},
	}
}

type caseWhenState struct {
	queryCore
	queryStartClauses
	withClause
	unwindClause
	whereClause
	caseWhenClause
	returnClause
	setClause[SetAvailable]
}

func newCaseWhen(q internal.Query) CaseWhenAvailable {
	return caseWhenState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		withClause:        withClause{q},
		unwindClause:      unwindClause{q},
		whereClause:       whereClause{q},
		caseWhenClause:    caseWhenClause{q},
		returnClause:      returnClause{q},
		setClause:         setClause[SetAvailable]{q, newSet},
	}
}

type deleteState struct {
	queryCore
	returnClause
	caseWhenClause
}

func newDelete(q internal.Query) DeleteAvailable {
	return deleteState{
		queryCore:      queryCore{q},
		returnClause:   returnClause{q},
		caseWhenClause: caseWhenClause{q},
	}
}

type limitState struct {
	queryCore
	queryStartClauses
	withClause
	unwindClause
	whereClause
	caseWhenClause
	returnClause
	setClause[SetAvailable]
	skipClause
}

func newLimit(q internal.Query) LimitAvailable {
	return limitState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		withClause:        withClause{q},
		unwindClause:      unwindClause{q},
		whereClause:       whereClause{q},
		caseWhenClause:    caseWhenClause{q},
		returnClause:      returnClause{q},
		setClause:         setClause[SetAvailable]{q, newSet},
		skipClause:        skipClause{q},
	}
}

type skipState struct {
	queryCore
	queryStartClauses
	withClause
	unwindClause
	whereClause
	caseWhenClause
	returnClause
	setClause[SetAvailable]
	removeClause
	limitClause
}

func newSkip(q internal.Query) SkipAvailable {
	return skipState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		withClause:        withClause{q},
		unwindClause:      unwindClause{q},
		whereClause:       whereClause{q},
		caseWhenClause:    caseWhenClause{q},
		returnClause:      returnClause{q},
		setClause:         setClause[SetAvailable]{q, newSet},
		removeClause:      removeClause{q},
		limitClause:       limitClause{q},
	}
}

type orderByState struct {
	queryCore
	limitClause
	skipClause
}

func newOrderBy(q internal.Query) OrderByAvailable {
	return orderByState{
		queryCore:   queryCore{q},
		limitClause: limitClause{q},
		skipClause:  skipClause{q},
	}
}

type removeState struct {
	queryCore
	setClause[SetAvailable]
	returnClause
}

func newRemove(q internal.Query) RemoveAvailable {
	return removeState{
		queryCore:    queryCore{q},
		setClause:    setClause[SetAvailable]{q, newSet},
		returnClause: returnClause{q},
	}
}

type returnState struct {
	queryCore
	queryStartClauses
	withClause
	unwindClause
	returnClause
	limitClause
	skipClause
	orderByClause
}

func newReturn(q internal.Query) ReturnAvailable {
	return returnState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		withClause:        withClause{q},
		unwindClause:      unwindClause{q},
		returnClause:      returnClause{q},
		limitClause:       limitClause{q},
		skipClause:        skipClause{q},
		orderByClause:     orderByClause{q},
	}
}

type setState struct {
	queryCore
	queryStartClauses
	withClause
	setClause[SetAvailable]
	removeClause
	unwindClause
	returnClause
}

func newSet(q internal.Query) SetAvailable {
	return setState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		withClause:        withClause{q},
		setClause:         setClause[SetAvailable]{q, newSet},
		removeClause:      removeClause{q},
		unwindClause:      unwindClause{q},
		returnClause:      returnClause{q},
	}
}

type setAfterMergeState struct {
	queryCore
	queryStartClauses
	onCreateClause
	onMatchClause
	withClause
	setClause[SetAfterMergeAvailable]
	unwindClause
	returnClause
}

func newSetAfterMerge(q internal.Query) SetAfterMergeAvailable {
	return setAfterMergeState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		onCreateClause:    onCreateClause{q},
		onMatchClause:     onMatchClause{q},
		withClause:        withClause{q},
		setClause:         setClause[SetAfterMergeAvailable]{q, newSetAfterMerge},
		unwindClause:      unwindClause{q},
		returnClause:      returnClause{q},
	}
}

type unwindState struct {
	queryCore
	queryStartClauses
	withClause
	unwindClause
	returnClause
	removeClause
}

func newUnwind(q internal.Query) UnwindAvailable {
	return unwindState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		withClause:        withClause{q},
		unwindClause:      unwindClause{q},
		returnClause:      returnClause{q},
		removeClause:      removeClause{q},
	}
}

type whereState struct {
	queryCore
	queryStartClauses
	returnClause
	deleteClause
	withClause
	whereClause
	setClause[SetAvailable]
	removeClause
	operatorStartClause
}

func newWhere(q internal.Query) WhereAvailable {
	return whereState{
		queryCore:           queryCore{q},
		queryStartClauses:   newQueryStartClauses(q),
		returnClause:        returnClause{q},
		deleteClause:        deleteClause{q},
		withClause:          withClause{q},
		whereClause:         whereClause{q},
		setClause:           setClause[SetAvailable]{q, newSet},
		removeClause:        removeClause{q},
		operatorStartClause: operatorStartClause{q},
	}
}

type withState struct {
	queryCore
	queryStartClauses
	withClause
	unwindClause
	whereClause
	setClause[SetAvailable]
	removeClause
	caseWhenClause
	returnClause
	limitClause
	skipClause
	orderByClause
}

func newWith(q internal.Query) WithAvailable {
	return withState{
		queryCore:         queryCore{q},
		queryStartClauses: newQueryStartClauses(q),
		withClause:        withClause{q},
		unwindClause:      unwindClause{q},
		whereClause:       whereClause{q},
		setClause:         setClause[SetAvailable]{q, newSet},
		removeClause:      removeClause{q},
		caseWhenClause:    caseWhenClause{q},
		returnClause:      returnClause{q},
		limitClause:       limitClause{q},
		skipClause:        skipClause{q},
		orderByClause:     orderByClause{q},
	}
}

type anyState struct {
	queryCore
	queryStartClauses
	nodeClause[NodeAvailable]
	relationClause[RelationAvailable]
	setClause[SetAvailable]
	whereClause
	withClause
	unwindClause
	returnClause
	deleteClause
	removeClause
	caseWhenClause
	limitClause
	skipClause
	orderByClause
	onCreateClause
	onMatchClause
	operatorStartClause
	operatorEndClause
	yieldClause
}

func newAny(q internal.Query) AnyAvailable {
	return anyState{
		queryCore:           queryCore{q},
		queryStartClauses:   newQueryStartClauses(q),
		nodeClause:          nodeClause[NodeAvailable]{q, newNode},
		relationClause:      relationClause[RelationAvailable]{q, newRelation},
		setClause:           setClause[SetAvailable]{q, newSet},
		whereClause:         whereClause{q},
		withClause:          withClause{q},
		unwindClause:        unwindClause{q},
		returnClause:        returnClause{q},
		deleteClause:        deleteClause{q},
		removeClause:        removeClause{q},
		caseWhenClause:      caseWhenClause{q},
		limitClause:         limitClause{q},
		skipClause:          skipClause{q},
		orderByClause:       orderByClause{q},
		onCreateClause:      onCreateClause{q},
		onMatchClause:       onMatchClause{q},
		operatorStartClause: operatorStartClause{q},
		operatorEndClause:   operatorEndClause{q},
		yieldClause:         yieldClause{q},
	}
}
