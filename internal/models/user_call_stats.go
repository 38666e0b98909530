package models

// UserCallStats summarizes one user's calls within a time window: per-model
// counts plus the total across models. Users with TotalCalls == 0 are never
// reported.
//
// Example JSON:
//
//	{
//	  "callsByModel": {
//	    "claude-3-opus-20240229": 3,
//	    "llama-3-70b-instruct": 1
//	  },
//	  "totalCalls": 4
//	}
type UserCallStats struct {
	CallsByModel map[string]int64 `json:"callsByModel"`
	TotalCalls   int64            `json:"totalCalls"`
}
