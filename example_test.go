package cymple_test

import (
	"fmt"

	cymple "github.com/iamkhav/Cymple"
)

func ExampleNewQueryBuilder() {
	q := cymple.NewQueryBuilder().
		Match().
		Node([]string{"Person"}, "n", nil).
		Where("n.name", "=", "Alice").
		ReturnLiteral("n")
	fmt.Println(q.Get())
	// Output: MATCH (n: Person) WHERE n.name = "Alice" RETURN n
}

func ExampleNewQueryBuilder_merge() {
	q := cymple.NewQueryBuilder().
		Merge().
		Node([]string{"Person"}, "n", cymple.Props{{Key: "name", Value: "Bob"}}).
		OnCreate().
		Set(cymple.Props{{Key: "n.created", Value: true}}).
		OnMatch().
		Set(cymple.Props{{Key: "n.seen", Value: true}})
	fmt.Println(q.Get())
	// Output: MERGE (n: Person {name : "Bob"}) ON CREATE SET n.created = true ON MATCH SET n.seen = true
}

func ExampleNewQueryBuilder_path() {
	q := cymple.NewQueryBuilder().
		Match().
		Node([]string{"Person"}, "a", nil).
		RelatedTo("KNOWS", "r", nil).
		Node([]string{"Person"}, "b", nil).
		ReturnMapping(
			cymple.Mapping{Name: "a.name", Alias: "from"},
			cymple.Mapping{Name: "b.name", Alias: "to"},
		)
	fmt.Println(q.Get())
	// Output: MATCH (a: Person)-[r: KNOWS]->(b: Person) RETURN a.name as from, b.name as to
}

func ExampleNewQueryBuilder_operator() {
	q := cymple.NewQueryBuilder().
		Call().
		OperatorStart("SHORTESTPATH", "p", "(:A)-[*]-(:B)").
		OperatorEnd().
		Yield(cymple.Mapping{Name: "length(p)", Alias: "len"})
	fmt.Println(q.Get())
	// Output: CALL p = SHORTESTPATH( (:A)-[*]-(:B) ) YIELD length(p) as len
}
