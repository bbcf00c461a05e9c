// file: services/scoreboard_service.go
package services

import (
	"log"
	"sort"
	"time"

	"GOTCTF/database"
	"GOTCTF/dto"
	"GOTCTF/models"
)

// BuildLeaderboard 聚合所有参赛队的总分、解题数和最后提交时间，按
// 总分降序、同分先解出者在前排序。includeBanned 供管理员视图使用；
// 排行榜视图只看 active 队伍（封禁只是隐藏，数据仍在）。
func BuildLeaderboard(includeBanned bool) []dto.TeamSummaryResp {
	db := database.DB.Preload("Solves").Where("role = ?", models.RoleParticipant)
	if !includeBanned {
		db = db.Where("status = ?", models.StatusActive)
	}

	var teams []models.Team
	if err := db.Find(&teams).Error; err != nil {
		log.Printf("Leaderboard aggregation failed: %v", err)
		return nil
	}

	type rankedEntry struct {
		dto.TeamSummaryResp
		lastSolve time.Time
	}
	ranked := make([]rankedEntry, 0, len(teams))
	for _, t := range teams {
		entry := rankedEntry{
			TeamSummaryResp: dto.TeamSummaryResp{
				ID:              t.ID,
				TeamName:        t.TeamName,
				CollegeName:     t.CollegeName,
				Score:           t.Score(),
				FlagsSolved:     uint(len(t.Solves)),
				Round1Completed: t.Round1Completed,
				Round2Completed: t.Round2Completed,
			},
		}
		if includeBanned {
			entry.Status = string(t.Status)
		}
		for _, s := range t.Solves {
			if s.SolvedAt.After(entry.lastSolve) {
				entry.lastSolve = s.SolvedAt
			}
		}
		if !entry.lastSolve.IsZero() {
			entry.LastSolve = entry.lastSolve.Format("2006-01-02 15:04:05")
		}
		ranked = append(ranked, entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if !ranked[i].lastSolve.Equal(ranked[j].lastSolve) {
			return ranked[i].lastSolve.Before(ranked[j].lastSolve)
		}
		return ranked[i].TeamName < ranked[j].TeamName
	})

	result := make([]dto.TeamSummaryResp, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.TeamSummaryResp)
	}
	return result
}

// InvalidateLeaderboardCache 任何计分变更后清空排行榜相关缓存键
func InvalidateLeaderboardCache() {
	if database.RDB == nil {
		return
	}
	keys, err := database.RDB.Keys(database.Ctx, "leaderboard:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
		log.Printf("Cleared %d leaderboard cache keys from Redis.", len(keys))
	}
}
