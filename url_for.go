package pageroute

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackielii/ctxkey"
)

var tableCtx = ctxkey.New[*Table]("pageroute.table", nil)

// WithTable returns a copy of ctx carrying t for URLFor. Shell does this for
// every page it renders.
func WithTable(ctx context.Context, t *Table) context.Context {
	return tableCtx.WithValue(ctx, t)
}

// URLFor returns the path of the page named name in the table carried by ctx.
func URLFor(ctx context.Context, name string) (string, error) {
	t := tableCtx.Value(ctx)
	if t == nil {
		return "", errors.New("urlfor: route table not found in context")
	}
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("urlfor: no route for page %s", name)
	}
	return r.Path, nil
}
