// file: controllers/team_controller.go
package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"GOTCTF/database"
	"GOTCTF/dto"
	"GOTCTF/services"
	"GOTCTF/utils"

	"github.com/gin-gonic/gin"
)

// GetTeams 排行榜：全部在榜（active）参赛队及其推导分。
// 结果在 Redis 里缓存 15 秒，计分变更时由 InvalidateLeaderboardCache 清掉。
func GetTeams(c *gin.Context) {
	cacheKey := "leaderboard:teams"
	if database.RDB != nil {
		val, err := database.RDB.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var cached []dto.TeamSummaryResp
			if json.Unmarshal([]byte(val), &cached) == nil {
				utils.Success(c, "success (from cache)", cached)
				return
			}
		}
	}

	teams := services.BuildLeaderboard(false)

	if database.RDB != nil {
		if jsonData, err := json.Marshal(teams); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
		}
	}

	utils.Success(c, "success", teams)
}

// GetSolveFeed 最近被接受的解题动态
func GetSolveFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	type feedEntry struct {
		TeamName    string    `json:"team_name"`
		ChallengeID string    `json:"challenge_id"`
		Points      uint      `json:"points"`
		SolvedAt    time.Time `json:"solved_at"`
	}
	var feed []feedEntry
	err := database.DB.Table("gotctf_solve s").
		Select("t.team_name, s.challenge_id, s.points, s.solved_at").
		Joins("JOIN gotctf_team t ON t.id = s.team_id").
		Where("t.status = ?", "active").
		Order("s.solved_at desc").
		Limit(limit).
		Scan(&feed).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败")
		return
	}

	utils.Success(c, "success", feed)
}
