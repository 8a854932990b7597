package sessions

import (
	"time"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// Params are the tunables of a generation run
type Params struct {
	SessionCount int
	MaxPosition  int
	Timeout      time.Duration
}

// Generator runs the whole synthesis sequentially
type Generator struct {
	segmenter *Segmenter
	builder   *RowBuilder
}

// NewGenerator wires a segmenter and a recency-ranked row builder over the catalog
func NewGenerator(campaigns []domain.Campaign, params Params) *Generator {
	return NewGeneratorWithPolicy(campaigns, params, NewRecencyPolicy())
}

// NewGeneratorWithPolicy is NewGenerator with a custom ranking policy
func NewGeneratorWithPolicy(campaigns []domain.Campaign, params Params, policy RankingPolicy) *Generator {
	return &Generator{
		segmenter: NewSegmenter(params.Timeout, params.SessionCount),
		builder:   NewRowBuilder(NewSelector(campaigns, policy, params.MaxPosition)),
	}
}

// Segmenter returns the generator's session segmenter
func (g *Generator) Segmenter() *Segmenter {
	return g.segmenter
}

// Builder returns the generator's row builder
func (g *Generator) Builder() *RowBuilder {
	return g.builder
}

// Generate indexes payments and returns the rows of every session in discovery order
func (g *Generator) Generate(payments []domain.Payment) []domain.SessionRow {
	var rows []domain.SessionRow
	for session := range g.segmenter.Sessions(Index(payments)) {
		rows = append(rows, g.builder.Build(session)...)
	}
	return rows
}
