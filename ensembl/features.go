package ensembl

import (
	homolog "github.com/GavinHuttley/homologsampler"
)

// Span is a 1-based inclusive interval on a sequence region.
type Span struct {
	Start int
	End   int
}

func (g *Genome) spanQuery(query string, seqRegionID int64, start, end int) ([]Span, error) {
	rows, err := g.db.Query(query, seqRegionID, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spans []Span
	for rows.Next() {
		var s Span
		if err := rows.Scan(&s.Start, &s.End); err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}
	return spans, rows.Err()
}

// RepeatSpans returns repeat_feature intervals overlapping a span.
func (g *Genome) RepeatSpans(seqRegionID int64, start, end int) ([]Span, error) {
	return g.spanQuery(`SELECT seq_region_start, seq_region_end
		FROM repeat_feature
		WHERE seq_region_id = ? AND seq_region_start <= ? AND seq_region_end >= ?`,
		seqRegionID, start, end)
}

// CpGSpans returns CpG island intervals overlapping a span.
func (g *Genome) CpGSpans(seqRegionID int64, start, end int) ([]Span, error) {
	return g.spanQuery(`SELECT sf.seq_region_start, sf.seq_region_end
		FROM simple_feature sf
		JOIN analysis a ON sf.analysis_id = a.analysis_id
		WHERE sf.seq_region_id = ? AND sf.seq_region_start <= ? AND sf.seq_region_end >= ?
		AND LOWER(a.logic_name) IN ('cpg', 'cpg_island')`,
		seqRegionID, start, end)
}

// ExonSpans returns exon intervals overlapping a span.
func (g *Genome) ExonSpans(seqRegionID int64, start, end int) ([]Span, error) {
	return g.spanQuery(`SELECT seq_region_start, seq_region_end
		FROM exon
		WHERE seq_region_id = ? AND seq_region_start <= ? AND seq_region_end >= ?`,
		seqRegionID, start, end)
}

// MaskSpans gathers the feature intervals masked during syntenic
// alignment export: repeats, CpG islands and exons.
func (g *Genome) MaskSpans(name string, loc homolog.Location) ([]Span, error) {
	id, err := g.seqRegionByName(name)
	if err != nil {
		return nil, err
	}
	var spans []Span
	for _, fetch := range []func(int64, int, int) ([]Span, error){
		g.RepeatSpans, g.CpGSpans, g.ExonSpans,
	} {
		got, err := fetch(id, loc.Start, loc.End)
		if err != nil {
			return nil, err
		}
		spans = append(spans, got...)
	}
	return spans, nil
}
