package cymple_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	cymple "github.com/iamkhav/Cymple"
)

func startContainer(t *testing.T, ctx context.Context) testcontainers.Container {
	request := testcontainers.ContainerRequest{
		Name:         "neo4j",
		Image:        "neo4j:5.7",
		ExposedPorts: []string{"7687/tcp"},
		WaitingFor:   wait.ForLog("Bolt enabled").WithStartupTimeout(time.Minute * 2),
		Env: map[string]string{
			"NEO4J_AUTH": fmt.Sprintf("%s/%s", "neo4j", "password"),
		},
	}
	container, err := testcontainers.GenericContainer(
		ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: request,
			Started:          true,
			Reuse:            true,
		})
	if err != nil {
		t.Fatal("container should start: %w", err)
	}
	return container
}

func TestIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	ctx := context.Background()
	container := startContainer(t, ctx)
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Error(err)
		}
	}()
	port, err := container.MappedPort(ctx, "7687")
	require.NoError(t, err)
	uri := fmt.Sprintf("bolt://localhost:%d", port.Int())
	driver, err := neo4j.NewDriverWithContext(
		uri,
		neo4j.BasicAuth("neo4j", "password", ""),
	)
	require.NoError(t, err)
	runner := cymple.NewRunner(driver)
	qb := cymple.NewQueryBuilder()

	t.Run("Create and read back", func(t *testing.T) {
		create := qb.
			Create().
			Node([]string{"Person"}, "n", cymple.Props{{Key: "name", Value: "Spongebob"}}).
			ReturnLiteral("n.name")
		records, err := runner.Write(ctx, create, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
		name, ok := records[0].Get("n.name")
		require.True(t, ok)
		require.Equal(t, "Spongebob", name)

		match := qb.
			Match().
			Node([]string{"Person"}, "n", nil).
			Where("n.name", "=", "Spongebob").
			ReturnLiteral("n.name")
		records, err = runner.Read(ctx, match, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("Merge is idempotent", func(t *testing.T) {
		merge := qb.
			Merge().
			Node([]string{"Person"}, "n", cymple.Props{{Key: "name", Value: "Patrick"}}).
			OnCreate().
			Set(cymple.Props{{Key: "n.created", Value: true}}).
			ReturnLiteral("n.name")
		for i := 0; i < 2; i++ {
			_, err := runner.Write(ctx, merge, nil)
			require.NoError(t, err)
		}
		count := qb.
			Match().
			Node([]string{"Person"}, "n", cymple.Props{{Key: "name", Value: "Patrick"}}).
			ReturnLiteral("count(n) as c")
		records, err := runner.Read(ctx, count, nil)
		require.NoError(t, err)
		require.Len(t, records, 1)
		c, ok := records[0].Get("c")
		require.True(t, ok)
		require.EqualValues(t, 1, c)
	})
}
