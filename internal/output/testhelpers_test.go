package output

import "github.com/vburojevic/logstat/internal/domain"

func sampleSummary(file string) *domain.FileSummary {
	methods := domain.NewCountMap()
	methods.Add("GET", 3)
	methods.Add("POST", 1)

	ips := domain.NewCountMap()
	ips.Add("10.0.0.1", 3)
	ips.Add("10.0.0.2", 1)

	return &domain.FileSummary{
		File:          file,
		TotalRequests: 4,
		TotalStat:     methods,
		TopIPs:        ips,
		TopLongest: []domain.RequestRecord{
			{IP: "10.0.0.1", Date: "01/Jan/2024:00:00:03", Method: "POST", URL: "/upload?name=résumé&x=<y>", Duration: 900},
			{IP: "10.0.0.2", Date: "01/Jan/2024:00:00:01", Method: "GET", URL: "/a", Duration: 150},
			{IP: "10.0.0.1", Date: "01/Jan/2024:00:00:00", Method: "GET", URL: "/b", Duration: 0},
		},
	}
}
