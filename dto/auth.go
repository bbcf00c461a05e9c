// file: dto/auth.go
package dto

import "strings"

// ========== 请求 DTO ==========

type RegisterReq struct {
	// 规范字段（snake_case）
	TeamName    string `json:"team_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	TeamMember1 string `json:"team_member1"`
	TeamMember2 string `json:"team_member2"`
	TeamMember3 string `json:"team_member3"`
	CollegeName string `json:"college_name"`

	// 仅用于兼容旧客户端（camelCase），所有别名都与上面 tag 不重复
	TeamNameCamel    string `json:"teamName"`
	TeamMember1Camel string `json:"teamMember1"`
	TeamMember2Camel string `json:"teamMember2"`
	TeamMember3Camel string `json:"teamMember3"`
	CollegeNameCamel string `json:"collegeName"`
}

// Normalize 将 camelCase 别名归一化到 snake_case 并清洗输入
func (r *RegisterReq) Normalize() {
	if r.TeamName == "" && r.TeamNameCamel != "" {
		r.TeamName = r.TeamNameCamel
	}
	if r.TeamMember1 == "" && r.TeamMember1Camel != "" {
		r.TeamMember1 = r.TeamMember1Camel
	}
	if r.TeamMember2 == "" && r.TeamMember2Camel != "" {
		r.TeamMember2 = r.TeamMember2Camel
	}
	if r.TeamMember3 == "" && r.TeamMember3Camel != "" {
		r.TeamMember3 = r.TeamMember3Camel
	}
	if r.CollegeName == "" && r.CollegeNameCamel != "" {
		r.CollegeName = r.CollegeNameCamel
	}

	r.TeamName = strings.TrimSpace(r.TeamName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.TeamMember1 = strings.TrimSpace(r.TeamMember1)
	r.TeamMember2 = strings.TrimSpace(r.TeamMember2)
	r.TeamMember3 = strings.TrimSpace(r.TeamMember3)
	r.CollegeName = strings.TrimSpace(r.CollegeName)
}

// Complete 必填校验统一在 Normalize 之后做，避免绑定阶段因别名误报
func (r *RegisterReq) Complete() bool {
	return r.TeamName != "" && r.Email != "" && r.Password != "" &&
		r.TeamMember1 != "" && r.TeamMember2 != "" && r.TeamMember3 != "" &&
		r.CollegeName != ""
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ========== 响应 DTO ==========

// IdentityResp 注册/登录返回的公开身份，不含任何口令派生字段
type IdentityResp struct {
	ID       uint32 `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TeamName string `json:"team_name"`
}
