package search

import (
	"context"
	"fmt"
	"messenger-lab/domain"

	"github.com/blugelabs/bluge"
	"github.com/samber/lo"
)

const (
	fieldID      = "_id"
	fieldContent = "content"
)

// fullTextMatcher keeps an in-memory bluge index of canonical contents.
// Bluge finds the matching message IDs; the candidate list decides who may see them and in which order.
type fullTextMatcher struct {
	writer *bluge.Writer
}

func newFullTextMatcher() (*fullTextMatcher, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening bluge index: %w", err)
	}
	return &fullTextMatcher{writer: writer}, nil
}

func (f *fullTextMatcher) add(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewTextField(fieldContent, message.Content))
	return f.writer.Update(doc.ID(), doc)
}

func (f *fullTextMatcher) match(ctx context.Context, candidates []domain.Message, keyword string) ([]domain.Message, error) {
	reader, err := f.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening bluge reader: %w", err)
	}
	defer reader.Close()

	query := bluge.NewMatchQuery(keyword).SetField(fieldContent)
	iterator, err := reader.Search(ctx, bluge.NewAllMatches(query))
	if err != nil {
		return nil, fmt.Errorf("bluge search: %w", err)
	}

	hits := make(map[string]struct{})
	match, err := iterator.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldID {
				hits[string(value)] = struct{}{}
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("reading bluge hits: %w", err)
	}

	return lo.Filter(candidates, func(m domain.Message, _ int) bool {
		_, ok := hits[m.ID.String()]
		return ok
	}), nil
}

func (f *fullTextMatcher) close() error {
	return f.writer.Close()
}
