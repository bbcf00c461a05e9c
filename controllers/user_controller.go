// file: controllers/user_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"GOTCTF/database"
	"GOTCTF/dto"
	"GOTCTF/models"
	"GOTCTF/utils"

	"github.com/gin-gonic/gin"
)

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()
	if !req.Complete() {
		utils.Error(c, http.StatusBadRequest, 1001, "缺少必填字段")
		return
	}

	// 队名与邮箱全局唯一
	var existing models.Team
	if err := database.DB.Where("team_name = ? OR email = ?", req.TeamName, req.Email).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusConflict, 2001, "队名或邮箱已被注册")
		return
	}

	newTeam := models.Team{
		TeamName:    req.TeamName,
		Email:       req.Email,
		Password:    req.Password, // BeforeSave Hook 里做 bcrypt
		TeamMember1: req.TeamMember1,
		TeamMember2: req.TeamMember2,
		TeamMember3: req.TeamMember3,
		CollegeName: req.CollegeName,
		Role:        models.RoleParticipant,
	}

	if err := database.DB.Create(&newTeam).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Created(c, "Team registered successfully", dto.IdentityResp{
		ID:       newTeam.ID,
		Email:    newTeam.Email,
		Role:     string(newTeam.Role),
		TeamName: newTeam.TeamName,
	})
}

func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}

	var team models.Team
	if err := database.DB.Where("email = ?", req.Email).First(&team).Error; err != nil {
		// 不区分"不存在"与"密码错误"
		utils.Error(c, http.StatusBadRequest, 2002, "队伍不存在或密码错误")
		return
	}

	if !team.CheckPassword(req.Password) {
		utils.Error(c, http.StatusBadRequest, 2002, "队伍不存在或密码错误")
		return
	}

	if team.Status == models.StatusBanned {
		utils.Error(c, http.StatusForbidden, 2005, "队伍已被取消资格")
		return
	}

	token, err := utils.GenerateToken(team)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5002, "Token 生成失败")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"team": dto.IdentityResp{
			ID:       team.ID,
			Email:    team.Email,
			Role:     string(team.Role),
			TeamName: team.TeamName,
		},
	})
}

// --- 需要登录的接口 ---

// GetTeamDetail 单队投影：解题账本、推导分、完赛标记。参赛队只能看自己。
func GetTeamDetail(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "无效的队伍ID")
		return
	}
	teamIDAny, _ := c.Get("team_id")
	requestingID, _ := teamIDAny.(uint32)
	roleAny, _ := c.Get("team_role")
	if uint32(targetID) != requestingID && roleAny != models.RoleAdmin {
		utils.Error(c, http.StatusForbidden, 4003, "权限不足")
		return
	}

	var team models.Team
	if err := database.DB.Preload("Solves").First(&team, targetID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, 4004, "队伍不存在")
		return
	}

	solves := make([]dto.SolveResp, 0, len(team.Solves))
	for _, s := range team.Solves {
		solves = append(solves, dto.SolveResp{
			ChallengeID: s.ChallengeID,
			Points:      s.Points,
			Timestamp:   s.SolvedAt.Format("2006-01-02 15:04:05"),
		})
	}

	utils.Success(c, "success", gin.H{
		"id":               team.ID,
		"team_name":        team.TeamName,
		"email":            team.Email,
		"college_name":     team.CollegeName,
		"solves":           solves,
		"score":            team.Score(),
		"flags_solved":     len(team.Solves),
		"round1_completed": team.Round1Completed,
		"round2_completed": team.Round2Completed,
		"revision":         team.Revision,
	})
}
