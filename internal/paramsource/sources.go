package paramsource

import (
	"github.com/kailas-cloud/nestedbench/internal/dataset"
	"github.com/kailas-cloud/nestedbench/internal/domain/query"
	"github.com/kailas-cloud/nestedbench/internal/rally"
)

// TermQuery matches a random tag.
type TermQuery struct {
	base
}

// NewTermQuery creates a TermQuery over ds.
func NewTermQuery(ds *dataset.Dataset, params rally.Params, seed uint64) *TermQuery {
	return &TermQuery{base: newBase(ds, params, seed)}
}

// Partition returns the receiver; the source does not shard.
func (s *TermQuery) Partition(_, _ int) rally.ParamSource { return s }

// Params builds the next request.
func (s *TermQuery) Params() (query.Request, error) {
	tag, err := s.drawTag()
	if err != nil {
		return query.Request{}, err
	}
	return s.request(query.Body{Query: tagMatch(tag)})
}

// SortedTermQuery matches a random tag and sorts by the newest answer.
type SortedTermQuery struct {
	base
}

// NewSortedTermQuery creates a SortedTermQuery over ds.
func NewSortedTermQuery(ds *dataset.Dataset, params rally.Params, seed uint64) *SortedTermQuery {
	return &SortedTermQuery{base: newBase(ds, params, seed)}
}

// Partition returns the receiver; the source does not shard.
func (s *SortedTermQuery) Partition(_, _ int) rally.ParamSource { return s }

// Params builds the next request.
func (s *SortedTermQuery) Params() (query.Request, error) {
	tag, err := s.drawTag()
	if err != nil {
		return query.Request{}, err
	}
	return s.request(query.Body{
		Query: tagMatch(tag),
		Sort: []query.SortField{{
			Field:      FieldAnswerDate,
			Mode:       query.SortModeMax,
			Order:      query.SortOrderDesc,
			NestedPath: PathAnswers,
		}},
	})
}

// NestedQuery matches a random tag among questions with an answer on or before a random date.
type NestedQuery struct {
	base
}

// NewNestedQuery creates a NestedQuery over ds.
func NewNestedQuery(ds *dataset.Dataset, params rally.Params, seed uint64) *NestedQuery {
	return &NestedQuery{base: newBase(ds, params, seed)}
}

// Partition returns the receiver; the source does not shard.
func (s *NestedQuery) Partition(_, _ int) rally.ParamSource { return s }

// Params builds the next request.
func (s *NestedQuery) Params() (query.Request, error) {
	tag, date, err := s.drawTagAndDate()
	if err != nil {
		return query.Request{}, err
	}
	return s.request(query.Body{
		Query: query.Bool{Must: []query.Query{
			tagMatch(tag),
			answeredBefore(date, nil),
		}},
	})
}

// NestedQueryWithInnerHits is NestedQuery that also returns the matching answers.
type NestedQueryWithInnerHits struct {
	base
}

// NewNestedQueryWithInnerHits creates a NestedQueryWithInnerHits over ds.
func NewNestedQueryWithInnerHits(ds *dataset.Dataset, params rally.Params, seed uint64) *NestedQueryWithInnerHits {
	return &NestedQueryWithInnerHits{base: newBase(ds, params, seed)}
}

// Partition returns the receiver; the source does not shard.
func (s *NestedQueryWithInnerHits) Partition(_, _ int) rally.ParamSource { return s }

// Params builds the next request. Needs inner_hits_size and size.
func (s *NestedQueryWithInnerHits) Params() (query.Request, error) {
	tag, date, err := s.drawTagAndDate()
	if err != nil {
		return query.Request{}, err
	}
	innerHitsSize, err := s.params.Int(ParamInnerHitsSize)
	if err != nil {
		return query.Request{}, err //nolint:wrapcheck // MissingParamError carries the key
	}
	size, err := s.params.Int(ParamSize)
	if err != nil {
		return query.Request{}, err //nolint:wrapcheck // MissingParamError carries the key
	}
	return s.request(query.Body{
		Query: query.Bool{Must: []query.Query{
			tagMatch(tag),
			answeredBefore(date, &query.InnerHits{Size: innerHitsSize}),
		}},
		Size: &size,
	})
}
