package api

import (
	"astrova/internal/db/models/postgres/public/model"
	"fmt"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

type PatternListEntry struct {
	PatternID             string  `json:"patternId"`
	PatternName           string  `json:"patternName"`
	PatternType           string  `json:"patternType"`
	Description           string  `json:"description,omitempty"`
	TotalOccurrences      int32   `json:"totalOccurrences"`
	HighImpactOccurrences int32   `json:"highImpactOccurrences"`
	SuccessRate           float64 `json:"successRate"`
	ModifiedAt            string  `json:"modifiedAt"`
}

type PatternListResponse struct {
	Patterns []PatternListEntry `json:"patterns"`
	Count    int                `json:"count"`
}

func (h ApiHandler) patterns(c *gin.Context) {
	patterns, err := h.PatternRepository.ListAll()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list patterns: %w", err), c)
		return
	}

	entries := make([]PatternListEntry, 0, len(patterns))
	for _, pattern := range patterns {
		entries = append(entries, patternListEntry(pattern))
	}
	// strongest evidence first; ListAll already breaks ties by name
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SuccessRate > entries[j].SuccessRate
	})

	c.JSON(200, PatternListResponse{
		Patterns: entries,
		Count:    len(entries),
	})
}

func patternListEntry(pattern model.AstrologicalPattern) PatternListEntry {
	entry := PatternListEntry{
		PatternID:             pattern.PatternID.String(),
		PatternName:           pattern.PatternName,
		PatternType:           pattern.PatternType,
		TotalOccurrences:      pattern.TotalOccurrences,
		HighImpactOccurrences: pattern.HighImpactOccurrences,
		SuccessRate:           pattern.SuccessRate,
		ModifiedAt:            pattern.ModifiedAt.UTC().Format(time.RFC3339),
	}
	if pattern.Description != nil {
		entry.Description = *pattern.Description
	}
	return entry
}
