// file: controllers/admin_controller.go
package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"GOTCTF/database"
	"GOTCTF/dto"
	"GOTCTF/models"
	"GOTCTF/services"
	"GOTCTF/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminGetTeams 管理端队伍表：含封禁队伍与状态列，不走缓存
func AdminGetTeams(c *gin.Context) {
	teams := services.BuildLeaderboard(true)
	utils.Success(c, "success", gin.H{
		"total": len(teams),
		"teams": teams,
	})
}

// ResetRoundUser 管理员重置某队某轮：删掉该轮的全部解题记录并清完赛标记。
// 删除按题库里该轮的显式标题集合过滤，不用"不在 Round 1 即 Round 2"的
// 补集规则，未知题目ID不会被误扫。
func ResetRoundUser(c *gin.Context) {
	var req dto.ResetRoundReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()
	round, ok := models.ValidRound(req.Round)
	if !ok {
		utils.Error(c, http.StatusBadRequest, 1001, "round 取值无效（1/2）")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, req.TeamID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "队伍不存在")
		return
	}

	column := "round1_completed"
	if round == models.Round2 {
		column = "round2_completed"
	}
	titles := models.RoundTitles(round)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ? AND challenge_id IN ?", team.ID, titles).
			Delete(&models.Solve{}).Error; err != nil {
			return err
		}
		return tx.Model(&team).Updates(map[string]interface{}{
			column:     false,
			"revision": gorm.Expr("revision + 1"),
		}).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "重置失败: "+err.Error())
		return
	}

	services.InvalidateLeaderboardCache()
	var fresh models.Team
	if database.DB.First(&fresh, team.ID).Error == nil {
		services.PublishSolve(fresh.ID, fresh.TeamName, fresh.Revision)
	}

	utils.Success(c, fmt.Sprintf("Round %d reset (cleared solves) for team %s", round, team.TeamName), nil)
}

// UpdateTeamStatus 封禁/解封。封禁是服务端的权威状态：登录、提交、
// 排行榜同时生效，数据本身不删。
func UpdateTeamStatus(c *gin.Context) {
	targetID, _ := strconv.Atoi(c.Param("id"))
	var req dto.TeamStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "无效的状态")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, targetID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "队伍不存在")
		return
	}
	if team.Role == models.RoleAdmin {
		utils.Error(c, http.StatusForbidden, 2010, "管理员账号不可封禁")
		return
	}

	err := database.DB.Model(&team).Updates(map[string]interface{}{
		"status":   models.TeamStatus(req.Status),
		"revision": gorm.Expr("revision + 1"),
	}).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "更新失败: "+err.Error())
		return
	}

	services.InvalidateLeaderboardCache()
	var fresh models.Team
	if database.DB.First(&fresh, team.ID).Error == nil {
		services.PublishTeamStatus(fresh)
	}

	utils.Success(c, "Team status updated", gin.H{
		"team_id": team.ID,
		"status":  req.Status,
	})
}

// ExportTeamsCSV 管理端队伍表导出。原来由前端拼 CSV，挪到服务端后
// 导出的是权威数据而非本地缓存。
func ExportTeamsCSV(c *gin.Context) {
	teams := services.BuildLeaderboard(true)

	filename := fmt.Sprintf("gotctf_teams_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "team_name", "college_name", "status", "score", "flags_solved", "last_solve", "round1_completed", "round2_completed"})
	for _, t := range teams {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.TeamName,
			t.CollegeName,
			t.Status,
			strconv.FormatUint(uint64(t.Score), 10),
			strconv.FormatUint(uint64(t.FlagsSolved), 10),
			t.LastSolve,
			strconv.FormatBool(t.Round1Completed),
			strconv.FormatBool(t.Round2Completed),
		})
	}
	w.Flush()
}

// GetAttemptLogs 管理员查询 Flag 提交审计日志（含答错记录），支持筛选+分页
func GetAttemptLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	type logDetail struct {
		ID            uint64    `json:"id"`
		TeamID        uint32    `json:"team_id"`
		TeamName      string    `json:"team_name"`
		ChallengeID   string    `json:"challenge_id"`
		SubmittedFlag string    `json:"submitted_flag"`
		Result        string    `json:"result"`
		IPAddress     string    `json:"ip_address"`
		SubmittedAt   time.Time `json:"submitted_at"`
	}

	db := database.DB.Table("gotctf_attempt_log l").
		Select("l.id, l.team_id, t.team_name, l.challenge_id, l.submitted_flag, l.result, l.ip_address, l.submitted_at").
		Joins("LEFT JOIN gotctf_team t ON l.team_id = t.id")

	if teamID := c.Query("team_id"); teamID != "" {
		db = db.Where("l.team_id = ?", teamID)
	}
	if challengeID := c.Query("challenge_id"); challengeID != "" {
		db = db.Where("l.challenge_id = ?", challengeID)
	}
	if result := c.Query("result"); result != "" {
		db = db.Where("l.result = ?", result)
	}

	var total int64
	db.Count(&total)

	var logs []logDetail
	if err := db.Order("l.submitted_at desc").Offset(offset).Limit(limit).Scan(&logs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败: "+err.Error())
		return
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"page":  page,
		"limit": limit,
		"logs":  logs,
	})
}
