// Package paramsource implements the query-body generators for the nested
// documents workload. Each source owns its random generator; instances never
// share mutable state.
package paramsource

import (
	"fmt"
	"math/rand/v2"

	"github.com/kailas-cloud/nestedbench/internal/dataset"
	"github.com/kailas-cloud/nestedbench/internal/domain/query"
	"github.com/kailas-cloud/nestedbench/internal/rally"
)

// DefaultSeed makes repeated benchmark runs draw the same sequence.
const DefaultSeed uint64 = 4

// Recognized parameters.
const (
	ParamUseRequestCache = "use_request_cache"
	ParamInnerHitsSize   = "inner_hits_size"
	ParamSize            = "size"
)

// Document fields targeted by the generated queries.
const (
	FieldTag        = "tag"
	FieldAnswerDate = "answers.date"
	PathAnswers     = "answers"
)

// base holds what every source shares: the dataset, the parameters and a seeded generator.
type base struct {
	data   *dataset.Dataset
	params rally.Params
	rng    *rand.Rand
}

func newBase(ds *dataset.Dataset, params rally.Params, seed uint64) base {
	return base{
		data:   ds,
		params: params,
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
}

// Size is always 1: one parameter set per call, generated indefinitely.
func (b *base) Size() int { return 1 }

func (b *base) drawTag() (string, error) {
	tag, err := b.data.RandomTag(b.rng)
	if err != nil {
		return "", fmt.Errorf("draw tag: %w", err)
	}
	return tag, nil
}

// drawTagAndDate draws the tag first, then the date.
func (b *base) drawTagAndDate() (string, string, error) {
	tag, err := b.drawTag()
	if err != nil {
		return "", "", err
	}
	date, err := b.data.RandomDate(b.rng)
	if err != nil {
		return "", "", fmt.Errorf("draw date: %w", err)
	}
	return tag, date, nil
}

func (b *base) request(body query.Body) (query.Request, error) {
	useCache, err := b.params.Bool(ParamUseRequestCache)
	if err != nil {
		return query.Request{}, err //nolint:wrapcheck // MissingParamError carries the key
	}
	return query.Request{Body: body, UseRequestCache: useCache}, nil
}

func tagMatch(tag string) query.Match {
	return query.Match{Field: FieldTag, Value: tag}
}

func answeredBefore(date string, innerHits *query.InnerHits) query.Nested {
	return query.Nested{
		Path:      PathAnswers,
		Query:     query.Range{Field: FieldAnswerDate, LTE: date},
		InnerHits: innerHits,
	}
}
