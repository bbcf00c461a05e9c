// file: dto/game.go
package dto

import "strings"

type SubmitFlagReq struct {
	ChallengeID string `json:"challenge_id"`
	Flag        string `json:"flag"`

	// 兼容旧客户端
	ChallengeIDCamel string `json:"challengeId"`
	FlagUpper        string `json:"Flag"`
}

func (r *SubmitFlagReq) Normalize() {
	if r.ChallengeID == "" && r.ChallengeIDCamel != "" {
		r.ChallengeID = r.ChallengeIDCamel
	}
	if r.Flag == "" && r.FlagUpper != "" {
		r.Flag = r.FlagUpper
	}
	r.ChallengeID = strings.TrimSpace(r.ChallengeID)
}

type CompleteRoundReq struct {
	Round int `json:"round" binding:"required"`
}

type ResetRoundReq struct {
	TeamID uint32 `json:"team_id"`
	Round  int    `json:"round"`

	TeamIDCamel uint32 `json:"teamId"`
}

func (r *ResetRoundReq) Normalize() {
	if r.TeamID == 0 && r.TeamIDCamel != 0 {
		r.TeamID = r.TeamIDCamel
	}
}

// GameStateReq 部分更新：nil 表示该轮的锁保持不变
type GameStateReq struct {
	Round1Locked *bool `json:"round1_locked"`
	Round2Locked *bool `json:"round2_locked"`

	Round1LockedCamel *bool `json:"round1Locked"`
	Round2LockedCamel *bool `json:"round2Locked"`
}

func (r *GameStateReq) Normalize() {
	if r.Round1Locked == nil && r.Round1LockedCamel != nil {
		r.Round1Locked = r.Round1LockedCamel
	}
	if r.Round2Locked == nil && r.Round2LockedCamel != nil {
		r.Round2Locked = r.Round2LockedCamel
	}
}

type TeamStatusReq struct {
	Status string `json:"status" binding:"required,oneof=active banned"`
}

// ========== 响应 DTO ==========

type SolveResp struct {
	ChallengeID string `json:"challenge_id"`
	Points      uint   `json:"points"`
	Timestamp   string `json:"timestamp"`
}

type SubmitFlagResp struct {
	Correct       bool        `json:"correct"`
	AlreadySolved bool        `json:"already_solved,omitempty"`
	Score         uint        `json:"score"`
	Solves        []SolveResp `json:"solves"`
}

type TeamSummaryResp struct {
	ID              uint32 `json:"id"`
	TeamName        string `json:"team_name"`
	CollegeName     string `json:"college_name"`
	Status          string `json:"status,omitempty"`
	Score           uint   `json:"score"`
	FlagsSolved     uint   `json:"flags_solved"`
	LastSolve       string `json:"last_solve,omitempty"`
	Round1Completed bool   `json:"round1_completed"`
	Round2Completed bool   `json:"round2_completed"`
}
