// file: models/challenge.go
package models

type Round int
type ChallengeDifficulty string

const (
	Round1 Round = 1
	Round2 Round = 2

	ChallengeDifficultyEasy   ChallengeDifficulty = "Easy"
	ChallengeDifficultyMedium ChallengeDifficulty = "Medium"
	ChallengeDifficultyHard   ChallengeDifficulty = "Hard"
)

// Challenge 静态题目定义。题面是编译期常量，不落库：
// 服务端只保存正确 Flag 的 SHA-256 摘要，从不保存明文答案。
type Challenge struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Points       uint                `json:"points"`
	Difficulty   ChallengeDifficulty `json:"difficulty"`
	FlagHash     string              `json:"-"` // 正确 Flag 的 SHA-256（hex），永不下发
	DownloadLink string              `json:"download_link,omitempty"`
}

var Round1Challenges = []Challenge{
	{
		Title:        "The Dragon's Whisper",
		Description:  "The royal portal hands out a guest account (guest/guest), but the gate checks your rank in the background. Intercept the login request and make the server believe you sit closer to the throne.",
		Points:       100,
		Difficulty:   ChallengeDifficultyEasy,
		FlagHash:     "51d507a2c5ae977e4c83b798970553b168a0269b69460558a40baf7337d3140e",
		DownloadLink: "/challenges/dragons_whisper.zip",
	},
	{
		Title:        "Burning Pages",
		Description:  "Intercept the network traffic and find the hidden flag in the packets. Someone has been sending secrets over unencrypted channels.",
		Points:       150,
		Difficulty:   ChallengeDifficultyEasy,
		FlagHash:     "fe68feb29ad249daa2cde24bf8a27c4ec7e535734911438117f48f3dd625e588",
		DownloadLink: "/challenges/wireshark.pcap",
	},
	{
		Title:        "Ember Trail",
		Description:  "Analyze the server logs to find evidence of a breach and recover the flag. Metadata hidden in royal communications reveals the path.",
		Points:       200,
		Difficulty:   ChallengeDifficultyMedium,
		FlagHash:     "3fef69bcfcb227833fefd0277152bd9bee12cb87e9e2005a70d0813458e9bf68",
		DownloadLink: "/challenges/access.log",
	},
	{
		Title:        "Fire & Smoke",
		Description:  "Bypass login or extract data from a vulnerable database using SQL injection. The flag hides within the ceremonial flames of the database.",
		Points:       250,
		Difficulty:   ChallengeDifficultyMedium,
		FlagHash:     "47242b6c44575b10b3abed6a4be1897b6cb8f12e224ed84a3d43721e212101b4",
		DownloadLink: "/challenges/fire_and_smoke.zip",
	},
	{
		Title:        "Valyrian Script",
		Description:  "This file is not what it seems. It acts like multiple formats. Find the hidden encoded secret within the dragon's vault.",
		Points:       200,
		Difficulty:   ChallengeDifficultyMedium,
		FlagHash:     "7725e826f37df182a8f1a1e7526a03408a4c0678c246192a4fc1344af554752e",
		DownloadLink: "/challenges/double_vision.jpg",
	},
	{
		Title:        "Dragon's Lair",
		Description:  "Enumerate all services on the target machine to find the open backdoor. The dragon's lair is full of open ports for the unwary.",
		Points:       300,
		Difficulty:   ChallengeDifficultyHard,
		FlagHash:     "19d476c578189bc976a92fd4ed3343e808de679ebce094f4e830fd016e5b3615",
		DownloadLink: "/challenges/dragons_lair.zip",
	},
	{
		Title:        "Flame Keeper",
		Description:  "Use your OSINT skills to find and crack a hidden zip file. Find the identity of the keeper from their digital footprint.",
		Points:       150,
		Difficulty:   ChallengeDifficultyEasy,
		FlagHash:     "1266bb94982de67c40fd5b85cb0a99bd1c46d6bd42144e1c1e7c7309cbd21795",
		DownloadLink: "/challenges/osint_to_unlock.zip",
	},
	{
		Title:        "Molten Core",
		Description:  "The file header is corrupted. Fix the magic bytes to see the content. Extract and analyze the core logic from the molten data.",
		Points:       350,
		Difficulty:   ChallengeDifficultyHard,
		FlagHash:     "097563e8c7668d8e2f0f208a555256afc3ec249a216fd586a864d01e7b1395c5",
		DownloadLink: "/challenges/challenge.jpg",
	},
	{
		Title:        "Ash & Bone",
		Description:  "Recover a deleted flag from a disk image. Forensics challenge — recover deleted artifacts from the ashes of the filesystem.",
		Points:       300,
		Difficulty:   ChallengeDifficultyHard,
		FlagHash:     "9e5bbdeeba472c9847c974bd28ef01cdadd2eac4f406937a03eb26c5fe48aa3f",
		DownloadLink: "/challenges/deep_excavation.dd.gz",
	},
	{
		Title:       "Dragonfire",
		Description: "A testing portal was left active on the internal network, secured only by a secret URL. View Source reveals what the developer tried to hide, and the address bar lets you tell the server who you want to be.",
		Points:      200,
		Difficulty:  ChallengeDifficultyMedium,
		FlagHash:    "08ec29959c2506da7bc47696df7a857db0623043a69a03bba2e22453d5153e3b",
	},
}

var Round2Challenges = []Challenge{
	{Title: "The Night's Watch", Description: "Breach the firewall of the Night's Watch. Find the vulnerability.", Points: 150, Difficulty: ChallengeDifficultyEasy, FlagHash: "c4d25e720f1cf89e7083f9fa764591033daae244ace2d6e27c50f5a94396b0c3"},
	{Title: "White Walker", Description: "A zombie process holds the key. Terminate it and claim the flag.", Points: 200, Difficulty: ChallengeDifficultyMedium, FlagHash: "c38cf52cbd6af009e3218622efa46380285bb761e18b889a06086ccf9068a860"},
	{Title: "Iron Throne", Description: "Escalate your privileges to sit on the Iron Throne.", Points: 350, Difficulty: ChallengeDifficultyHard, FlagHash: "95bfb83edad1b73e4335f354efee56936fd0e3eeab86f0c05d66663d65feb763"},
	{Title: "Winterfell Breach", Description: "Exploit a buffer overflow in the castle defenses.", Points: 300, Difficulty: ChallengeDifficultyHard, FlagHash: "690c4e3db5e014eb82acd0af454366a1f7db96c2afaa9c528be827e0a530c315"},
	{Title: "Raven's Message", Description: "Intercept and decode the encrypted raven message.", Points: 200, Difficulty: ChallengeDifficultyMedium, FlagHash: "c88fed9e4d231f0b67e1bc6fda37a1266ef9a5610812a368ff6fca9c3b7a46ce"},
	{Title: "Stark's Secret", Description: "Reverse engineer the Stark family's authentication mechanism.", Points: 250, Difficulty: ChallengeDifficultyMedium, FlagHash: "34bc4971211de392010910b83a1aeb328acc391a2ee1823fd24b91ee71242d97"},
	{Title: "Wildfire", Description: "A dangerous binary awaits. Defuse it to find the flag.", Points: 400, Difficulty: ChallengeDifficultyHard, FlagHash: "ea1afbb3aca962cae6c8ca94d85c1aacca2f14ceeda93537c6651963309f6652"},
	{Title: "The Wall", Description: "Bypass the wall's defense mechanisms using exploitation techniques.", Points: 300, Difficulty: ChallengeDifficultyHard, FlagHash: "3eda610bc28ec103799c8fd7b25231ac18f71d8c75446345b5bd2ba9e3e5784c"},
	{Title: "King's Landing", Description: "Navigate a complex network to reach the king's secrets.", Points: 250, Difficulty: ChallengeDifficultyMedium, FlagHash: "e6359364870adda1d27e5e0c58199cd4a517b25af85470b099d569978ce0b125"},
	{Title: "Faceless Men", Description: "Authentication bypass — become no one to access everything.", Points: 350, Difficulty: ChallengeDifficultyHard, FlagHash: "70de9e9a13a7c4413b491d09e9a2ee84f3e5cd51e87ad4a4bfa6ccffebf6d40a"},
	{Title: "Valar Morghulis", Description: "The ultimate challenge. All men must die — all flags must fall.", Points: 500, Difficulty: ChallengeDifficultyHard, FlagHash: "f75fb1f4e00fa181afcdb283b25f35f9da10349b542cd7ea47df082a82cdcb46"},
}

// 轮次归属只从上面两个数组推导，不再维护第二份标题清单。
// 不认识的题目标题一律报错，绝不默认归入 Round 2。
var (
	challengeIndex = make(map[string]*Challenge)
	roundIndex     = make(map[string]Round)
)

func init() {
	for i := range Round1Challenges {
		ch := &Round1Challenges[i]
		challengeIndex[ch.Title] = ch
		roundIndex[ch.Title] = Round1
	}
	for i := range Round2Challenges {
		ch := &Round2Challenges[i]
		challengeIndex[ch.Title] = ch
		roundIndex[ch.Title] = Round2
	}
}

// FindChallenge 按标题查找题目
func FindChallenge(title string) (*Challenge, bool) {
	ch, ok := challengeIndex[title]
	return ch, ok
}

// RoundOf 返回题目所属轮次
func RoundOf(title string) (Round, bool) {
	r, ok := roundIndex[title]
	return r, ok
}

// RoundChallenges 返回指定轮次的题目列表
func RoundChallenges(r Round) []Challenge {
	switch r {
	case Round1:
		return Round1Challenges
	case Round2:
		return Round2Challenges
	}
	return nil
}

// RoundTitles 返回指定轮次的全部题目标题
func RoundTitles(r Round) []string {
	chs := RoundChallenges(r)
	titles := make([]string, 0, len(chs))
	for _, ch := range chs {
		titles = append(titles, ch.Title)
	}
	return titles
}

// ValidRound 校验客户端传入的轮次编号
func ValidRound(n int) (Round, bool) {
	if n == 1 || n == 2 {
		return Round(n), true
	}
	return 0, false
}
