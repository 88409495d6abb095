package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Dataset shape errors.
var (
	ErrNotSequence = errors.New("dataset must be a sequence of mappings")
	ErrNotMapping  = errors.New("dataset entry must be a mapping")
)

// Load reads a YAML or JSON dataset file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %q: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a dataset document. source is recorded on every Record and
// used in error messages. An empty document yields no records.
func Parse(data []byte, source string) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing dataset %q: %w", source, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []Record{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return []Record{}, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s", ErrNotSequence, source)
	}

	records := make([]Record, 0, len(root.Content))
	for i, item := range root.Content {
		if item.Kind == yaml.AliasNode && item.Alias != nil {
			item = item.Alias
		}
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s entry %d", ErrNotMapping, source, i)
		}

		rec := Record{Source: source, Fields: make([]Field, 0, len(item.Content)/2)}
		for j := 0; j+1 < len(item.Content); j += 2 {
			rec.Fields = append(rec.Fields, Field{
				Key:   item.Content[j].Value,
				Value: nodeValue(item.Content[j+1]),
			})
		}
		records = append(records, rec)
	}
	return records, nil
}

// nodeValue flattens a YAML value into a display string. Collections are
// rendered in flow style on a single line.
func nodeValue(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return ""
		}
		return n.Value
	case yaml.AliasNode:
		if n.Alias != nil {
			return nodeValue(n.Alias)
		}
		return ""
	}

	flow := *n
	flow.Style = yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// LoadFiles loads several dataset files concurrently and concatenates their
// records in argument order. The first failure cancels the remaining loads.
func LoadFiles(ctx context.Context, paths ...string) ([]Record, error) {
	log := zerolog.Ctx(ctx)
	results := make([][]Record, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			records, err := Load(path)
			if err != nil {
				return err
			}
			log.Debug().Str("path", path).Int("records", len(records)).Msg("dataset loaded")
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]Record, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
