// file: utils/flag.go
package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DigestFlag 对提交文本去首尾空白后计算 SHA-256（hex 小写）。
// 校验在服务端完成，客户端只上送原始 Flag 文本。
func DigestFlag(flag string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(flag)))
	return hex.EncodeToString(sum[:])
}

// VerifyFlag 将提交文本的摘要与题目存储的摘要逐字节比对，
// 无部分给分、不忽略大小写
func VerifyFlag(flag, wantHex string) bool {
	got := DigestFlag(flag)
	want := strings.ToLower(strings.TrimSpace(wantHex))
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// GenerateFlag 给出题人生成一条随机 Flag（入库前仍需换算成摘要）
func GenerateFlag() string {
	part1 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	part2 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	return fmt.Sprintf("GOT{%s-%s}", part1, part2)
}
