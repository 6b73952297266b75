package cymple

import (
	"context"
	"errors"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner hands built query text to a Neo4j driver. It is deliberately
// thin: the builder itself never depends on a database, and a Runner
// accepts any value in the builder's [Query] readout state.
type Runner struct {
	db     neo4j.DriverWithContext
	config neo4j.SessionConfig
}

// NewRunner wraps an open driver. Configurers adjust the session config
// used for every run.
func NewRunner(db neo4j.DriverWithContext, configurers ...func(*neo4j.SessionConfig)) *Runner {
	r := &Runner{db: db}
	for _, c := range configurers {
		c(&r.config)
	}
	return r
}

func (r *Runner) DB() neo4j.DriverWithContext { return r.db }

// Read runs the query in a read transaction and collects the records.
func (r *Runner) Read(ctx context.Context, query Query, params map[string]any) ([]*neo4j.Record, error) {
	return r.run(ctx, neo4j.AccessModeRead, query, params)
}

// Write runs the query in a write transaction and collects the records.
func (r *Runner) Write(ctx context.Context, query Query, params map[string]any) ([]*neo4j.Record, error) {
	return r.run(ctx, neo4j.AccessModeWrite, query, params)
}

func (r *Runner) run(ctx context.Context, mode neo4j.AccessMode, query Query, params map[string]any) (records []*neo4j.Record, err error) {
	canon, err := canonicalizeParams(params)
	if err != nil {
		return nil, err
	}
	config := r.config
	config.AccessMode = mode
	sess := r.db.NewSession(ctx, config)
	defer func() {
		if closeErr := sess.Close(ctx); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()
	runTx := func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query.Get(), canon)
		if err != nil {
			return nil, err
		}
		return result.Collect(ctx)
	}
	var out any
	if mode == neo4j.AccessModeWrite {
		out, err = sess.ExecuteWrite(ctx, runTx)
	} else {
		out, err = sess.ExecuteRead(ctx, runTx)
	}
	if err != nil {
		return nil, err
	}
	return out.([]*neo4j.Record), nil
}

// canonicalizeParams lowers slices, maps and structs to the plain
// []any / map[string]any shapes the driver accepts.
func canonicalizeParams(params map[string]any) (map[string]any, error) {
	if params == nil {
		return nil, nil
	}
	canon := make(map[string]any, len(params))
	for k, v := range params {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Slice:
			bytes, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			var js []any
			if err := json.Unmarshal(bytes, &js); err != nil {
				return nil, err
			}
			canon[k] = js
		case reflect.Map, reflect.Struct:
			bytes, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			var js map[string]any
			if err := json.Unmarshal(bytes, &js); err != nil {
				return nil, err
			}
			canon[k] = js
		default:
			canon[k] = v
		}
	}
	return canon, nil
}
