package aggregator

import "github.com/vburojevic/logstat/internal/domain"

// accumulator holds the mutable counters for a single file scan.
type accumulator struct {
	total   int
	methods *domain.CountMap
	ips     *domain.CountMap
	longest []domain.RequestRecord // descending by duration, len <= limit
	limit   int
}

func newAccumulator(limit int) *accumulator {
	return &accumulator{
		methods: domain.NewCountMap(),
		ips:     domain.NewCountMap(),
		longest: make([]domain.RequestRecord, 0, limit+1),
		limit:   limit,
	}
}

func (a *accumulator) add(rec domain.RequestRecord) {
	a.total++
	a.methods.Inc(rec.Method)
	a.ips.Inc(rec.IP)
	a.pushLongest(rec)
}

// pushLongest keeps the limit longest records seen so far. A record goes
// after every kept record of equal or greater duration, which gives the same
// result as a stable descending sort of the whole scan.
func (a *accumulator) pushLongest(rec domain.RequestRecord) {
	pos := len(a.longest)
	for i, kept := range a.longest {
		if rec.Duration > kept.Duration {
			pos = i
			break
		}
	}
	if pos >= a.limit {
		return
	}
	a.longest = append(a.longest, domain.RequestRecord{})
	copy(a.longest[pos+1:], a.longest[pos:])
	a.longest[pos] = rec
	if len(a.longest) > a.limit {
		a.longest = a.longest[:a.limit]
	}
}

func (a *accumulator) summary(path string, topN int) *domain.FileSummary {
	longest := make([]domain.RequestRecord, len(a.longest))
	copy(longest, a.longest)

	return &domain.FileSummary{
		File:          path,
		TotalRequests: a.total,
		TotalStat:     a.methods.Clone(),
		TopIPs:        a.ips.Top(topN),
		TopLongest:    longest,
	}
}
