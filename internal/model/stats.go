package model

// NameValue 带名字的计数值，序列顺序对调用方有意义
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyStat 单个月份的聚合统计
// Month 使用 YYYY-MM 格式；Keywords 按固定关键词顺序给出（含 0 计数）；
// TopEmojis 最多 4 项，按计数降序，计数相同时按首次出现顺序
type MonthlyStat struct {
	Month        string      `json:"month"`
	MessageCount int         `json:"messageCount"`
	PhotoCount   int         `json:"photoCount"`
	Keywords     []NameValue `json:"keywords"`
	TopEmojis    []NameValue `json:"topEmojis"`
}

// ChatAnalysis 一次完整聚合的结果，按 chatId 持久化
// LastUpdated 由存储层负责写入，核心不关心
type ChatAnalysis struct {
	ChatID        int64         `json:"chatId"`
	ChatName      *string       `json:"chatName"`
	TotalMessages int           `json:"totalMessages"`
	MonthlyStats  []MonthlyStat `json:"monthlyStats"`
	LastUpdated   string        `json:"lastUpdated,omitempty"`
}

// GalleryPhoto 由 photoCount 合成的占位图片记录，前两张标记 featured
type GalleryPhoto struct {
	ID       string `json:"id"`
	Month    string `json:"month"`
	Index    int    `json:"index"`
	Featured bool   `json:"featured"`
}
