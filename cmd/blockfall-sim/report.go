package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
)

type Report struct {
	// Configuration
	Games    int
	Seed     uint64
	MaxSteps int

	// Results
	TotalSteps int64
	TotalScore int64
	TotalLines int64
	BestScore  int
	Abandoned  int
	TotalTime  time.Duration
	GameTime   Stats

	Clears *intmap.Map[int64, int64]
	Levels *intmap.Map[int64, int64]

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type histRow struct {
	Key   int64
	Count int64
}

// rows materializes the int-keyed histogram over a known key range so the
// template stays dumb.
func rows(m *intmap.Map[int64, int64], from, to int64) []histRow {
	var out []histRow
	for k := from; k <= to; k++ {
		if v, ok := m.Get(k); ok {
			out = append(out, histRow{Key: k, Count: v})
		}
	}
	return out
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Autoplay Report

## Configuration
- **Games:** {{.Games}}
- **Base Seed:** {{.Seed}}
- **Step Cap:** {{.MaxSteps}}

## Outcomes
- **Total Steps:** {{.TotalSteps}}
- **Total Score:** {{.TotalScore}}
- **Best Score:** {{.BestScore}}
- **Total Lines:** {{.TotalLines}}
- **Abandoned Games:** {{.Abandoned}}
- **Total Run Time:** {{.TotalTime}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}

## Line Clears
{{range .ClearRows}}- {{.Key}}-line clears: {{.Count}}
{{end}}
## Final Levels
{{range .LevelRows}}- level {{.Key}}: {{.Count}} games
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end)
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end)
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	view := struct {
		*Report
		ClearRows []histRow
		LevelRows []histRow
	}{
		Report:    r,
		ClearRows: rows(r.Clears, 1, 4),
		LevelRows: rows(r.Levels, 0, 14),
	}

	return tmpl.Execute(w, view)
}
