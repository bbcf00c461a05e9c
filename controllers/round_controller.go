// file: controllers/round_controller.go
package controllers

import (
	"errors"
	"net/http"

	"GOTCTF/database"
	"GOTCTF/dto"
	"GOTCTF/models"
	"GOTCTF/services"
	"GOTCTF/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loadGameState 读取全局闸门记录，缺失时用默认值（两轮锁定）懒创建
func loadGameState() (models.GameState, error) {
	var gs models.GameState
	err := database.DB.First(&gs, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		gs = models.GameState{
			ID:           1,
			Round1Locked: true,
			Round2Locked: true,
			Revision:     1,
		}
		err = database.DB.Create(&gs).Error
	}
	return gs, err
}

// GetGameState 轮询客户端仍可使用的读接口
func GetGameState(c *gin.Context) {
	gs, err := loadGameState()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败: "+err.Error())
		return
	}
	utils.Success(c, "success", gs)
}

// UpdateGameState 管理员部分更新两把轮次锁；修订号在 SQL 里原子 +1，
// 更新完成后向事件通道广播新状态
func UpdateGameState(c *gin.Context) {
	var req dto.GameStateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()
	if req.Round1Locked == nil && req.Round2Locked == nil {
		utils.Error(c, http.StatusBadRequest, 1001, "缺少必填字段")
		return
	}

	if _, err := loadGameState(); err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败: "+err.Error())
		return
	}

	updates := map[string]interface{}{
		"revision": gorm.Expr("revision + 1"),
	}
	if req.Round1Locked != nil {
		updates["round1_locked"] = *req.Round1Locked
	}
	if req.Round2Locked != nil {
		updates["round2_locked"] = *req.Round2Locked
	}
	if err := database.DB.Model(&models.GameState{}).Where("id = ?", 1).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "更新失败: "+err.Error())
		return
	}

	gs, err := loadGameState()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败: "+err.Error())
		return
	}
	services.PublishGameState(gs)

	utils.Success(c, "Game state updated", gs)
}

// CompleteRound 本队提交完赛。幂等：已完赛再次调用是空操作；
// 单向：只有管理员重置能翻回去。
func CompleteRound(c *gin.Context) {
	var req dto.CompleteRoundReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}
	round, ok := models.ValidRound(req.Round)
	if !ok {
		utils.Error(c, http.StatusBadRequest, 1001, "round 取值无效（1/2）")
		return
	}

	teamIDAny, _ := c.Get("team_id")
	teamID, _ := teamIDAny.(uint32)

	gs, err := loadGameState()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败")
		return
	}
	if gs.RoundLocked(round) {
		utils.Error(c, http.StatusForbidden, 4005, "该轮次已锁定")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "队伍不存在")
		return
	}

	if team.RoundCompleted(round) {
		utils.Success(c, "Round already completed", gin.H{"round": int(round)})
		return
	}

	column := "round1_completed"
	if round == models.Round2 {
		column = "round2_completed"
	}
	err = database.DB.Model(&team).Updates(map[string]interface{}{
		column:     true,
		"revision": gorm.Expr("revision + 1"),
	}).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "更新失败: "+err.Error())
		return
	}

	var fresh models.Team
	if database.DB.First(&fresh, teamID).Error == nil {
		services.PublishSolve(fresh.ID, fresh.TeamName, fresh.Revision)
	}
	services.InvalidateLeaderboardCache()

	utils.Success(c, "Round marked as completed", gin.H{"round": int(round)})
}
