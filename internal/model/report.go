package model

type ReportFilter struct {
	Start   string
	End     string
	ClassID string
	NIS     string
}

type ReportRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ReportRow struct {
	NIS       string `json:"nis"`
	Name      string `json:"nama"`
	ClassName string `json:"kelas"`
	Present   int    `json:"hadir"`
	Sick      int    `json:"sakit"`
	Excused   int    `json:"izin"`
	Absent    int    `json:"alpha"`
}

type Report struct {
	Range ReportRange `json:"range"`
	Data  []ReportRow `json:"data"`
}
