package models

// DonorStats - количество доступных для поиска доноров по группам крови
type DonorStats struct {
	Total        int                `json:"total"`
	ByBloodGroup map[BloodGroup]int `json:"byBloodGroup"`
}
