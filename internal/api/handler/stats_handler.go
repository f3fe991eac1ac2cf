package handler

import (
	"Commons/internal/pkg/response"
	"Commons/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.PostStatsService
}

func NewStatsHandler(statsSvc service.PostStatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

func (s *StatsHandler) GetQueryStats(c *gin.Context) {
	stats, err := s.statsSvc.GetQueryStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
