// file: controllers/challenge_controller.go
package controllers

import (
	"errors"
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
	"gorm.io/gorm/clause"
)

var (
	errTeamNotFound   = errors.New("队伍不存在")
	errTeamBanned     = errors.New("队伍已被取消资格")
	errRoundCompleted = errors.New("该轮已提交完赛，等待管理员重置")
)

// ListChallenges 题目列表（不含 Flag 摘要），带上本队已解集合与锁状态
func ListChallenges(c *gin.Context) {
	teamIDAny, _ := c.Get("team_id")
	teamID, _ := teamIDAny.(uint32)

	var solves []models.Solve
	database.DB.Where("team_id = ?", teamID).Find(&solves)
	solved := make(map[string]bool, len(solves))
	for _, s := range solves {
		solved[s.ChallengeID] = true
	}

	gs, err := loadGameState()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败")
		return
	}

	rounds := []models.Round{models.Round1, models.Round2}
	if n, err := strconv.Atoi(c.Query("round")); err == nil {
		r, ok := models.ValidRound(n)
		if !ok {
			utils.Error(c, http.StatusBadRequest, 1001, "round 取值无效（1/2）")
			return
		}
		rounds = []models.Round{r}
	}

	type challengeItem struct {
		models.Challenge
		Round  int  `json:"round"`
		Solved bool `json:"solved"`
		Locked bool `json:"locked"`
	}
	var items []challengeItem
	for _, r := range rounds {
		for _, ch := range models.RoundChallenges(r) {
			items = append(items, challengeItem{
				Challenge: ch,
				Round:     int(r),
				Solved:    solved[ch.Title],
				Locked:    gs.RoundLocked(r),
			})
		}
	}

	utils.Success(c, "success", gin.H{
		"total":      len(items),
		"challenges": items,
	})
}

// SubmitFlag 服务端校验 Flag：只收原始文本，去空白后算 SHA-256 与题目
// 摘要比对，分值取自题库而非请求体。判重靠 (team_id, challenge_id)
// 唯一索引，并发下输掉竞争的一方拿到幂等的"已解出"成功，分数不变。
func SubmitFlag(c *gin.Context) {
	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()
	if req.ChallengeID == "" || req.Flag == "" {
		utils.Error(c, http.StatusBadRequest, 1001, "缺少必填字段")
		return
	}

	teamIDAny, exists := c.Get("team_id")
	if !exists {
		utils.Error(c, http.StatusUnauthorized, 4001, "未登录")
		return
	}
	teamID := teamIDAny.(uint32)

	// 管理员试做题目：直接成功，不落库
	if roleAny, _ := c.Get("team_role"); roleAny == models.RoleAdmin {
		utils.Success(c, "Solve recorded (admin, not persisted)", dto.SubmitFlagResp{
			Correct: true,
			Solves:  []dto.SolveResp{},
		})
		return
	}

	challenge, ok := models.FindChallenge(req.ChallengeID)
	if !ok {
		utils.Error(c, http.StatusNotFound, 4004, "题目不存在")
		return
	}
	round, _ := models.RoundOf(challenge.Title)

	gs, err := loadGameState()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "查询失败")
		return
	}
	if gs.RoundLocked(round) {
		logAttempt(teamID, challenge.Title, req.Flag, models.AttemptLocked, c.ClientIP())
		utils.Error(c, http.StatusForbidden, 4005, "该轮次已锁定")
		return
	}

	correct := utils.VerifyFlag(req.Flag, challenge.FlagHash)

	var (
		team          models.Team
		alreadySolved bool
	)
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 对队伍行加锁，串行化同队的并发提交
		if err := database.LockForUpdate(tx).
			First(&team, teamID).Error; err != nil {
			return errTeamNotFound
		}
		if team.Status == models.StatusBanned {
			return errTeamBanned
		}
		if team.RoundCompleted(round) {
			return errRoundCompleted
		}

		if !correct {
			return nil // 答错不动任何状态，审计日志在事务外写
		}

		solve := models.Solve{
			TeamID:      team.ID,
			ChallengeID: challenge.Title,
			Flag:        req.Flag,
			Points:      challenge.Points,
			SolvedAt:    time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&solve)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			alreadySolved = true
			return nil
		}

		return tx.Model(&team).
			UpdateColumn("revision", gorm.Expr("revision + 1")).Error
	})

	switch {
	case err == nil:
	case errors.Is(err, errTeamNotFound):
		utils.Error(c, http.StatusNotFound, 4004, err.Error())
		return
	case errors.Is(err, errTeamBanned), errors.Is(err, errRoundCompleted):
		utils.Error(c, http.StatusForbidden, 4005, err.Error())
		return
	default:
		utils.Error(c, http.StatusInternalServerError, 5000, "提交失败: "+err.Error())
		return
	}

	if !correct {
		logAttempt(teamID, challenge.Title, req.Flag, models.AttemptWrong, c.ClientIP())
		utils.Success(c, "Flag 错误", dto.SubmitFlagResp{Correct: false, Score: currentScore(teamID)})
		return
	}

	if alreadySolved {
		logAttempt(teamID, challenge.Title, req.Flag, models.AttemptDuplicate, c.ClientIP())
	} else {
		logAttempt(teamID, challenge.Title, req.Flag, models.AttemptCorrect, c.ClientIP())
		services.InvalidateLeaderboardCache()
		var fresh models.Team
		if database.DB.First(&fresh, teamID).Error == nil {
			services.PublishSolve(fresh.ID, fresh.TeamName, fresh.Revision)
		}
	}

	var solves []models.Solve
	database.DB.Where("team_id = ?", teamID).Order("solved_at asc").Find(&solves)
	resp := dto.SubmitFlagResp{
		Correct:       true,
		AlreadySolved: alreadySolved,
		Score:         models.ComputeScore(solves),
		Solves:        make([]dto.SolveResp, 0, len(solves)),
	}
	for _, s := range solves {
		resp.Solves = append(resp.Solves, dto.SolveResp{
			ChallengeID: s.ChallengeID,
			Points:      s.Points,
			Timestamp:   s.SolvedAt.Format("2006-01-02 15:04:05"),
		})
	}
	utils.Success(c, "Solve recorded", resp)
}

func currentScore(teamID uint32) uint {
	var solves []models.Solve
	database.DB.Where("team_id = ?", teamID).Find(&solves)
	return models.ComputeScore(solves)
}

func logAttempt(teamID uint32, challengeID, flag string, result models.AttemptResult, ip string) {
	entry := models.AttemptLog{
		TeamID:        teamID,
		ChallengeID:   challengeID,
		SubmittedFlag: flag,
		Result:        result,
		IPAddress:     ip,
		SubmittedAt:   time.Now(),
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		// 审计失败不影响主流程
		return
	}
}
