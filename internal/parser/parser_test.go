package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vburojevic/logstat/internal/domain"
)

const sampleLine = `10.0.0.1 - - [01/Jan/2024:00:00:00] "GET /a HTTP/1.1" 200 512 "-" "curl" 150`

func TestParser_Parse(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name string
		line string
		want domain.Fields
	}{
		{
			name: "combined line with duration",
			line: sampleLine,
			want: domain.Fields{
				IP: "10.0.0.1", User: "-", Date: "01/Jan/2024:00:00:00",
				Request: "GET /a HTTP/1.1", Status: "200", Size: "512",
				Referer: "-", UserAgent: "curl", Duration: "150",
			},
		},
		{
			name: "sentinel size and duration are preserved",
			line: `192.168.1.5 - alice [10/Oct/2023:13:55:36 +0000] "POST /api/login HTTP/2.0" 401 - "https://example.com/" "Mozilla/5.0 (X11; Linux)" -`,
			want: domain.Fields{
				IP: "192.168.1.5", User: "alice", Date: "10/Oct/2023:13:55:36 +0000",
				Request: "POST /api/login HTTP/2.0", Status: "401", Size: "-",
				Referer: "https://example.com/", UserAgent: "Mozilla/5.0 (X11; Linux)", Duration: "-",
			},
		},
		{
			name: "empty quoted fields",
			line: `::1 - - [] "" 500 0 "" "" 7`,
			want: domain.Fields{
				IP: "::1", User: "-", Status: "500", Size: "0", Duration: "7",
			},
		},
		{
			name: "trailing text after duration is ignored",
			line: sampleLine + ` upstream=10.1.1.1 extra`,
			want: domain.Fields{
				IP: "10.0.0.1", User: "-", Date: "01/Jan/2024:00:00:00",
				Request: "GET /a HTTP/1.1", Status: "200", Size: "512",
				Referer: "-", UserAgent: "curl", Duration: "150",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Parse(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got.Map(), 9)
		})
	}
}

func TestParser_ParseNoMatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := New(zap.New(core))

	lines := []string{
		"=== server restarted ===",
		`10.0.0.1 - - [01/Jan/2024:00:00:00] GET /a HTTP/1.1 200 512 "-" "curl" 150`,
		`10.0.0.1 - - 01/Jan/2024:00:00:00 "GET /a HTTP/1.1" 200 512 "-" "curl" 150`,
		`10.0.0.1 - - [01/Jan/2024:00:00:00] "GET /a HTTP/1.1" 20 512 "-" "curl" 150`,
		`10.0.0.1 - - [01/Jan/2024:00:00:00] "GET /a HTTP/1.1" 200 big "-" "curl" 150`,
		`10.0.0.1 - - [01/Jan/2024:00:00:00] "GET /a HTTP/1.1" 200 512 "-" "curl"`,
		`10.0.0.1 - - [01/Jan/2024:00:00:00] "GET /a HTTP/1.1" 200 512 "-" "curl" slow`,
		` 10.0.0.1 - - [01/Jan/2024:00:00:00] "GET /a HTTP/1.1" 200 512 "-" "curl" 150`,
	}

	for _, line := range lines {
		_, ok := p.Parse(line)
		assert.False(t, ok, line)
	}

	entries := logs.FilterMessage("skipped line").All()
	require.Len(t, entries, len(lines))
	assert.Equal(t, lines[0], entries[0].ContextMap()["line"])
}

func TestSplitRequest(t *testing.T) {
	tests := []struct {
		request string
		method  string
		url     string
		ok      bool
	}{
		{"GET /a HTTP/1.1", "GET", "/a", true},
		{"DELETE /items/42", "DELETE", "/items/42", true},
		{"  OPTIONS   *   HTTP/1.0 ", "OPTIONS", "*", true},
		{"GET", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			method, url, ok := SplitRequest(tt.request)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.method, method)
			assert.Equal(t, tt.url, url)
		})
	}
}
