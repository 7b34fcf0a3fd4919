package console

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
)

const EmptyMessage = "No records found."

// ListView fetches one list endpoint and renders it as a table.
type ListView[T any] struct {
	Key     string
	Path    string
	Noun    string
	Columns []string
	Row     func(T) []string
}

func (v ListView[T]) Load(ctx context.Context, client *Client, cache *QueryCache) ([]T, error) {
	return Query(ctx, cache, v.Key, func(ctx context.Context) ([]T, error) {
		items := make([]T, 0)
		if _, err := client.Do(ctx, http.MethodGet, v.Path, nil, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
}

// Render writes the loading line, then the error, empty or table state.
func (v ListView[T]) Render(ctx context.Context, w io.Writer, client *Client, cache *QueryCache) error {

	if !cache.Cached(v.Key) {
		fmt.Fprintf(w, "Loading %s...\n", v.Noun)
	}

	items, err := v.Load(ctx, client, cache)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", err.Error())
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(v.Columns, "\t"))
	for _, item := range items {
		fmt.Fprintln(tw, strings.Join(v.Row(item), "\t"))
	}
	return tw.Flush()

}
