package messages

// CaptureView 一次建筑易主，阵营用名字表示。
type CaptureView struct {
	Building int    `json:"building"`
	From     string `json:"from"`
	To       string `json:"to"`
}
