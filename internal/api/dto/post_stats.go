package dto

// PostQueryStatsDTO 帖子查询链路统计
type PostQueryStatsDTO struct {
	Counters       map[string]int64 `json:"counters"`
	MissingIndexes []string         `json:"missing_indexes"`
	ProbedAt       *string          `json:"probed_at"`
}
