package handler

import (
	"github.com/jowa-zm/jowa-backend/internal/api/dto"
)

// fallbackJobs is the degrade policy for the job listing: whenever live
// data cannot be produced, for any reason, the caller gets this fixed
// two-item payload with HTTP 200 instead of an error. Callers must not
// treat a 200 from /api/jobs as proof of live data.
func fallbackJobs() []dto.JobDTO {
	return []dto.JobDTO{
		{
			ID:          1,
			Title:       "Construction Worker",
			Company:     "ZamBuild Construction",
			Location:    "Lusaka",
			Salary:      "K120/day",
			Type:        "Daily",
			Category:    "construction",
			Description: "General construction work at building sites.",
			Posted:      "2 hours ago",
		},
		{
			ID:          2,
			Title:       "Farm Assistant",
			Company:     "Green Valley Farms",
			Location:    "Ndola",
			Salary:      "K80/day",
			Type:        "Daily",
			Category:    "farming",
			Description: "Assist with farming activities.",
			Posted:      "5 hours ago",
		},
	}
}
